package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "PORTAL"

// parseEnv overlays cfg with PORTAL_* variables. Unset or empty variables
// leave the current value alone.
func parseEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	strs := map[string]*string{
		"backend_url":     &cfg.BackendURL,
		"state_dsn":       &cfg.StateDSN,
		"output_dir":      &cfg.OutputDir,
		"listen_addr":     &cfg.ListenAddr,
		"log_backend":     &cfg.LogBackend,
		"locale":          &cfg.Locale,
		"font_path":       &cfg.FontPath,
		"font_bold_path":  &cfg.FontBoldPath,
		"s3_bucket":       &cfg.S3Bucket,
		"s3_region":       &cfg.S3Region,
		"s3_endpoint":     &cfg.S3Endpoint,
		"s3_user":         &cfg.S3User,
		"s3_password":     &cfg.S3Password,
		"s3_prefix":       &cfg.S3Prefix,
		"razorpay_key_id": &cfg.RazorpayKeyID,
		"checkout_url":    &cfg.CheckoutURL,
		"merchant_name":   &cfg.MerchantName,
	}
	for key, dst := range strs {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}

	if err := v.BindEnv("http_timeout"); err != nil {
		return fmt.Errorf("bind env http_timeout: %w", err)
	}
	if s := v.GetString("http_timeout"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%s_HTTP_TIMEOUT: %w", envPrefix, err)
		}
		cfg.HTTPTimeout = d
	}
	return nil
}
