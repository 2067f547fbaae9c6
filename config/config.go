package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
)

type Config struct {
	Addr string

	StoreBackend string
	DBUrl        string
	StoreBaseURL string
	StoreBaseID  string
	StoreAPIKey  string

	CompletionBaseURL string
	CompletionAPIKey  string
	CompletionModel   string

	Debug bool
}

func ParseFlags() (cfg Config, err error) {
	var host string
	flag.StringVar(&host, "host", "0.0.0.0", "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", envUint("PORT", 80), "listen port number (default $PORT or 80)")
	flag.StringVar(&cfg.StoreBackend, "store", envString("STORE_BACKEND", "airtable"), "record store backend: airtable or sqlite (default airtable)")
	flag.StringVar(&cfg.DBUrl, "db-url", envString("DB_URL", "vsurvey.sqlite"), "path to SQLite3 DB file for -store sqlite (default vsurvey.sqlite)")
	flag.StringVar(&cfg.StoreBaseURL, "store-base-url", envString("AIRTABLE_BASE_URL", "https://api.airtable.com"), "record store API base URL")
	flag.StringVar(&cfg.StoreBaseID, "store-base-id", os.Getenv("AIRTABLE_BASE_ID"), "record store base identifier")
	flag.StringVar(&cfg.StoreAPIKey, "store-api-key", os.Getenv("AIRTABLE_API_KEY"), "record store API key")
	flag.StringVar(&cfg.CompletionBaseURL, "completion-base-url", envString("OPENAI_BASE_URL", "https://api.openai.com/v1"), "completion service base URL")
	flag.StringVar(&cfg.CompletionAPIKey, "completion-api-key", os.Getenv("OPENAI_API_KEY"), "completion service API key")
	flag.StringVar(&cfg.CompletionModel, "completion-model", envString("OPENAI_MODEL", "gpt-4o-mini"), "completion model name")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))

	if cfg.CompletionAPIKey == "" {
		err = errors.New("missing parameter -completion-api-key (or OPENAI_API_KEY)")
		return
	}
	if cfg.StoreBackend == "airtable" && (cfg.StoreBaseID == "" || cfg.StoreAPIKey == "") {
		err = errors.New("missing parameters -store-base-id/-store-api-key (or AIRTABLE_BASE_ID/AIRTABLE_API_KEY)")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint) uint {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback
	}
	return uint(n)
}
