package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-a", "-o", "-c", "-config"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate values kept, others dropped",
			args: []string{"-a", "http://127.0.0.1:8001/api", "-l", "127.0.0.1:9090", "-o", "./out"},
			want: []string{"-a", "http://127.0.0.1:8001/api", "-o", "./out"},
		},
		{
			name: "equals form",
			args: []string{"-config=portal.json", "-d=state.db"},
			want: []string{"-config=portal.json"},
		},
		{
			name: "dash-prefixed next arg is not a value",
			args: []string{"-c", "-config=alt.json"},
			want: []string{"-c", "-config=alt.json"},
		},
		{
			name: "trailing flag without value",
			args: []string{"serve", "-o"},
			want: []string{"-o"},
		},
		{
			name: "repeated flag keeps order",
			args: []string{"-c", "one.json", "serve", "-c", "two.json"},
			want: []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name: "nothing allowed",
			args: []string{"serve", "-v"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestPositional(t *testing.T) {
	valueFlags := []string{"-a", "-d", "-o", "-c"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "subcommand after flags", args: []string{"-a", "http://x/api", "serve"}, want: []string{"serve"}},
		{name: "subcommand before flags", args: []string{"serve", "-o", "./out"}, want: []string{"serve"}},
		{name: "equals form skipped", args: []string{"-config=a.json", "repl"}, want: []string{"repl"}},
		{name: "unknown bool flag does not eat next arg", args: []string{"-v", "serve"}, want: []string{"serve"}},
		{name: "none", args: []string{"-a", "x"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Positional(tt.args, valueFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/portal.json", ConfigPath([]string{"-a", "x", "-config=/etc/portal.json"}))
	assert.Equal(t, "two.json", ConfigPath([]string{"-c", "one.json", "-config", "two.json"}))
	assert.Empty(t, ConfigPath([]string{"serve"}))
}
