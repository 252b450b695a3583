package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nvpwelfare/portal/internal/flagx"
	"github.com/nvpwelfare/portal/internal/timex"
)

// JsonConfig is the on-disk form of Config.
type JsonConfig struct {
	BackendURL    string         `json:"backend_url"`
	StateDSN      string         `json:"state_dsn"`
	OutputDir     string         `json:"output_dir"`
	HTTPTimeout   timex.Duration `json:"http_timeout"`
	ListenAddr    string         `json:"listen_addr"`
	LogBackend    string         `json:"log_backend"`
	Locale        string         `json:"locale"`
	FontPath      string         `json:"font_path"`
	FontBoldPath  string         `json:"font_bold_path"`
	S3Bucket      string         `json:"s3_bucket"`
	S3Region      string         `json:"s3_region"`
	S3Endpoint    string         `json:"s3_endpoint"`
	S3User        string         `json:"s3_user"`
	S3Password    string         `json:"s3_password"`
	S3Prefix      string         `json:"s3_prefix"`
	RazorpayKeyID string         `json:"razorpay_key_id"`
	CheckoutURL   string         `json:"checkout_url"`
	MerchantName  string         `json:"merchant_name"`
}

func toJson(c *Config) JsonConfig {
	return JsonConfig{
		BackendURL:    c.BackendURL,
		StateDSN:      c.StateDSN,
		OutputDir:     c.OutputDir,
		HTTPTimeout:   timex.Duration{Duration: c.HTTPTimeout},
		ListenAddr:    c.ListenAddr,
		LogBackend:    c.LogBackend,
		Locale:        c.Locale,
		FontPath:      c.FontPath,
		FontBoldPath:  c.FontBoldPath,
		S3Bucket:      c.S3Bucket,
		S3Region:      c.S3Region,
		S3Endpoint:    c.S3Endpoint,
		S3User:        c.S3User,
		S3Password:    c.S3Password,
		S3Prefix:      c.S3Prefix,
		RazorpayKeyID: c.RazorpayKeyID,
		CheckoutURL:   c.CheckoutURL,
		MerchantName:  c.MerchantName,
	}
}

func (jc JsonConfig) apply(c *Config) {
	c.BackendURL = jc.BackendURL
	c.StateDSN = jc.StateDSN
	c.OutputDir = jc.OutputDir
	c.HTTPTimeout = jc.HTTPTimeout.Duration
	c.ListenAddr = jc.ListenAddr
	c.LogBackend = jc.LogBackend
	c.Locale = jc.Locale
	c.FontPath = jc.FontPath
	c.FontBoldPath = jc.FontBoldPath
	c.S3Bucket = jc.S3Bucket
	c.S3Region = jc.S3Region
	c.S3Endpoint = jc.S3Endpoint
	c.S3User = jc.S3User
	c.S3Password = jc.S3Password
	c.S3Prefix = jc.S3Prefix
	c.RazorpayKeyID = jc.RazorpayKeyID
	c.CheckoutURL = jc.CheckoutURL
	c.MerchantName = jc.MerchantName
}

// parseJson overlays cfg with the file named by -c/-config, if any. The file
// is decoded over the current values, so absent keys change nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	jc := toJson(cfg)
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	jc.apply(cfg)
	return nil
}
