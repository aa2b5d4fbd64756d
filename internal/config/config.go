package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Default model names used by the AI bridge.
const (
	DefaultImageModel = "gemini-2.5-flash-image"
	DefaultTextModel  = "gemini-3-flash-preview"
)

// Config represents the main configuration for profilekit.
type Config struct {
	DeviceID   string           `toml:"device_id" validate:"required"`
	BaseDir    string           `toml:"base_dir" validate:"required"`
	LogDir     string           `toml:"log_dir" validate:"required"`
	Store      StoreConfig      `toml:"store"`
	Vault      VaultConfig      `toml:"vault"`
	Encryption EncryptionConfig `toml:"encryption"`
	AI         AIConfig         `toml:"ai"`
}

// StoreConfig represents configuration for the durable document store.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type StoreConfig struct {
	Type    string `toml:"type" validate:"required,oneof=memory filesystem sqlite badger"`
	DataDir string `toml:"data_dir,omitempty" validate:"required_unless=Type memory"`
}

// VaultConfig represents configuration for the media vault.
type VaultConfig struct {
	Type string `toml:"type" validate:"required,oneof=memory filesystem s3"`

	// FileSystem-specific fields (only used when Type == "filesystem")
	FSVaultRoot string `toml:"fs_vault_root,omitempty" validate:"required_if=Type filesystem"`

	// S3-specific fields (only used when Type == "s3"). S3Endpoint points at
	// an S3-compatible server; empty means AWS.
	S3Bucket   string `toml:"s3_bucket,omitempty" validate:"required_if=Type s3"`
	S3Prefix   string `toml:"s3_prefix,omitempty"`
	S3Region   string `toml:"s3_region,omitempty" validate:"required_if=Type s3"`
	S3Endpoint string `toml:"s3_endpoint,omitempty" validate:"omitempty,url"`
}

// EncryptionConfig selects encryption at rest for stored documents.
type EncryptionConfig struct {
	Type           string `toml:"type" validate:"omitempty,oneof=none age test"` // "none" (default), "age" or "test"
	PublicKeyPath  string `toml:"public_key_path" validate:"required_if=Type age"`
	PrivateKeyPath string `toml:"private_key_path" validate:"required_if=Type age"`
}

// Enabled reports whether documents are encrypted before they are stored.
func (c EncryptionConfig) Enabled() bool {
	return c.Type != "" && c.Type != "none"
}

// AIConfig configures the generative-AI bridge. The API key itself is never
// written to the config file; see CredentialFile.
type AIConfig struct {
	ImageModel     string `toml:"image_model" validate:"required"`
	TextModel      string `toml:"text_model" validate:"required"`
	CredentialFile string `toml:"credential_file,omitempty"`
}

// NewConfig creates a new Config with the provided values and defaults for
// everything else.
func NewConfig(deviceID, baseDir string) *Config {
	return &Config{
		DeviceID: deviceID,
		BaseDir:  baseDir,
		LogDir:   filepath.Join(baseDir, "log"),
		Store: StoreConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "data"),
		},
		Vault: VaultConfig{
			Type:        "filesystem",
			FSVaultRoot: filepath.Join(baseDir, "media"),
		},
		Encryption: EncryptionConfig{
			Type:           "none",
			PublicKeyPath:  filepath.Join(baseDir, "keys", "profilekit.pub"),
			PrivateKeyPath: filepath.Join(baseDir, "keys", "profilekit.key"),
		},
		AI: AIConfig{
			ImageModel:     DefaultImageModel,
			TextModel:      DefaultTextModel,
			CredentialFile: filepath.Join(baseDir, "keys", "api_key"),
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration is complete and that every tagged
// union carries the fields its type needs.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads and validates a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
