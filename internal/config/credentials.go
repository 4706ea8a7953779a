package config

import (
	"strings"

	"github.com/spf13/viper"
)

// credentialEnv maps each credential to the environment variables that may
// carry it, in precedence order. The later names are the older or short
// forms still accepted from existing deployments.
var credentialEnv = map[string][]string{
	"datastore.url":         {"SUPABASE_DB_URL", "DATABASE_URL"},
	"datastore.anon_key":    {"NEXT_PUBLIC_SUPABASE_ANON_KEY", "NEXT_PUBLIC_SUPABASE_API_KEY"},
	"datastore.service_key": {"SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_KEY"},
	"storage.key_id":        {"BACKBLAZE_KEY_ID", "B2_KEY_ID"},
	"storage.app_key":       {"BACKBLAZE_APPLICATION_KEY", "B2_APP_KEY"},
	"storage.bucket":        {"BACKBLAZE_BUCKET_NAME", "B2_BUCKET"},
	"storage.endpoint":      {"BACKBLAZE_ENDPOINT", "B2_ENDPOINT"},
	"storage.region":        {"BACKBLAZE_REGION", "B2_REGION"},
	"storage.cdn_base_url":  {"NEXT_PUBLIC_MEDIA_CDN_URL", "PUBLIC_B2_BASE_URL"},
}

type credentials struct {
	DatastoreURL  string
	AnonKey       string
	ServiceKey    string
	StorageKeyID  string
	StorageAppKey string
	Bucket        string
	Endpoint      string
	Region        string
	CDNBaseURL    string
}

// loadCredentials resolves every aliased credential through a private viper
// instance. Empty variables count as unset, so an empty primary name falls
// through to its alias.
func loadCredentials() credentials {
	v := viper.New()
	v.AllowEmptyEnv(false)
	for key, envs := range credentialEnv {
		args := append([]string{key}, envs...)
		_ = v.BindEnv(args...)
	}
	v.SetDefault("storage.region", "us-west-004")

	get := func(key string) string { return strings.TrimSpace(v.GetString(key)) }
	return credentials{
		DatastoreURL:  get("datastore.url"),
		AnonKey:       get("datastore.anon_key"),
		ServiceKey:    get("datastore.service_key"),
		StorageKeyID:  get("storage.key_id"),
		StorageAppKey: get("storage.app_key"),
		Bucket:        get("storage.bucket"),
		Endpoint:      get("storage.endpoint"),
		Region:        get("storage.region"),
		CDNBaseURL:    get("storage.cdn_base_url"),
	}
}
