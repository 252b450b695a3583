package config

import "time"

// Config holds runtime settings for the portal client.
type Config struct {
	BackendURL  string
	StateDSN    string
	OutputDir   string
	HTTPTimeout time.Duration
	ListenAddr  string
	LogBackend  string

	// Locale picks the short-date format printed on documents.
	Locale string
	// FontPath and FontBoldPath name UTF-8 TrueType fonts. Without them the
	// built-in Helvetica is used and the Devanagari address is transliterated.
	FontPath     string
	FontBoldPath string

	// S3 mirror of downloaded documents; disabled when S3Bucket is empty.
	S3Bucket   string
	S3Region   string
	S3Endpoint string
	S3User     string
	S3Password string
	S3Prefix   string

	RazorpayKeyID string
	CheckoutURL   string
	MerchantName  string
}

// LoadDefaults populates c with defaults suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:8001/api"
	c.StateDSN = "portal.db"
	c.OutputDir = "documents"
	c.HTTPTimeout = 15 * time.Second
	c.ListenAddr = "127.0.0.1:8080"
	c.LogBackend = "zap"
	c.Locale = "en-IN"
	c.S3Region = "us-east-1"
	c.S3Prefix = "documents"
	c.CheckoutURL = "https://checkout.razorpay.com/v1/checkout.js"
	c.MerchantName = "NVP Welfare Foundation"
}

// S3Enabled reports whether documents are mirrored to a bucket.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// Load applies defaults, then the JSON file, the environment and the flags
// found in args.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
