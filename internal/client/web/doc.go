// Package web serves the portal's views over local HTTP. Every protected
// route goes through RequireSession, which applies access.Guard; handlers
// never make their own authorization decisions.
package web
