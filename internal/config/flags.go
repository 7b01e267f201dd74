package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

// EnvPrefix is the prefix of environment variables that may set any flag,
// e.g. SEEDER_ASSETS_ROOT for -assets-root.
const EnvPrefix = "SEEDER"

const (
	BackendFirebase = "firebase"
	BackendLocal    = "local"
)

// DefaultCredentialsPath is where the service account key is expected when
// neither -credentials nor FIREBASE_SERVICE_ACCOUNT_PATH say otherwise.
const DefaultCredentialsPath = "serviceAccountKey.json"

// Options are the run options of the seed command.
type Options struct {
	EnvFile            string
	CredentialsPath    string
	AssetsRoot         string
	ManifestPath       string
	Backend            string
	LocalBlobURI       string
	LocalPublicBaseURL string
	AllowMissingImages bool
	Verbose            bool
}

// NewFlagSet returns a flag set whose flags are bound to opts.
func NewFlagSet(opts *Options) *flag.FlagSet {
	fs := flagset.NewFlagSet("seed")

	fs.StringVar(&opts.EnvFile, "env-file", ".env", "Path of a .env file to load before reading FIREBASE_* variables.")
	fs.StringVar(&opts.CredentialsPath, "credentials", DefaultCredentialsPath, "Path of the Firebase Admin SDK service account key. Defaults to FIREBASE_SERVICE_ACCOUNT_PATH when that is set.")
	fs.StringVar(&opts.AssetsRoot, "assets-root", ".", "Directory that image paths in the manifest are relative to.")
	fs.StringVar(&opts.ManifestPath, "manifest", "", "Path of a YAML content manifest. If empty the built-in SheTravels content is used.")
	fs.StringVar(&opts.Backend, "backend", BackendFirebase, "Where to seed. Valid options are: firebase, local.")
	fs.StringVar(&opts.LocalBlobURI, "local-blob-uri", "mem://", "A valid gocloud.dev/blob URI used by the local backend.")
	fs.StringVar(&opts.LocalPublicBaseURL, "local-public-base-url", "", "Base of public image URLs written by the local backend. Defaults to the Cloud Storage URL of FIREBASE_STORAGE_BUCKET.")
	fs.BoolVar(&opts.AllowMissingImages, "allow-missing-images", false, "Write documents with an empty imageUrl when their image cannot be uploaded.")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging.")

	return fs
}

// ParseFlags parses args into fs, loads the .env file and then fills the
// flags that were not given on the command line from the environment.
//
// Precedence, highest first: command line flags, SEEDER_* variables,
// FIREBASE_SERVICE_ACCOUNT_PATH (for -credentials only), flag defaults.
// Variables from the .env file count as environment variables but never
// override ones already exported.
func ParseFlags(fs *flag.FlagSet, opts *Options, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) {
		explicit[fl.Name] = true
	})

	// The .env path itself may only come from the command line or the
	// process environment.
	if err := setFlagsFromEnvVars(fs, explicit, "env-file"); err != nil {
		return err
	}
	if err := LoadEnvFile(opts.EnvFile); err != nil {
		return err
	}

	if !explicit["credentials"] {
		opts.CredentialsPath = getEnvOrDefault("FIREBASE_SERVICE_ACCOUNT_PATH", DefaultCredentialsPath)
	}

	if err := setFlagsFromEnvVars(fs, explicit); err != nil {
		return err
	}

	return opts.Validate()
}

// setFlagsFromEnvVars assigns SEEDER_* values to the flags of fs that are
// not in explicit. If names is not empty only those flags are considered.
func setFlagsFromEnvVars(fs *flag.FlagSet, explicit map[string]bool, names ...string) error {
	only := make(map[string]bool, len(names))
	for _, name := range names {
		only[name] = true
	}

	var err error
	fs.VisitAll(func(fl *flag.Flag) {
		if err != nil || explicit[fl.Name] {
			return
		}
		if len(only) > 0 && !only[fl.Name] {
			return
		}

		env := flagset.FlagNameToEnvVar(EnvPrefix, fl.Name)
		val, ok := os.LookupEnv(env)
		if !ok {
			return
		}
		if setErr := fs.Set(fl.Name, val); setErr != nil {
			err = fmt.Errorf("invalid value %q for %s: %w", val, env, setErr)
		}
	})
	return err
}

// Validate checks option values that flag parsing cannot.
func (o *Options) Validate() error {
	switch o.Backend {
	case BackendFirebase, BackendLocal:
	default:
		return fmt.Errorf("invalid backend %q, valid options are: %s, %s", o.Backend, BackendFirebase, BackendLocal)
	}

	if o.AssetsRoot == "" {
		return fmt.Errorf("assets root must not be empty")
	}

	return nil
}
