package config

import (
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/curtisnewbie/dating/util/dlog"
	"github.com/curtisnewbie/dating/util/errs"
	"github.com/curtisnewbie/dating/util/hash"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	configFileArg     = "configFile"
	defaultConfigFile = "conf.yml"
)

var (
	placeholderPat = regexp.MustCompile(`\${[a-zA-Z0-9\-_.]+}`)

	ErrConfigLoad = errs.NewErrfCode(errs.ErrCodeConfigLoadFailure, "Failed to load configuration")
)

// Props of the dating tools, backed by viper.
//
// Values are layered: defaults, then yaml config, then environment and cli args.
type AppConfig struct {
	mu    sync.RWMutex
	vp    *viper.Viper
	bools *hash.RWMap[string, bool]
}

func NewAppConfig() *AppConfig {
	a := &AppConfig{
		vp:    viper.New(),
		bools: hash.NewRWMap[string, bool](),
	}
	for k, v := range defaultProps {
		a.vp.SetDefault(k, v)
	}
	return a
}

func (a *AppConfig) get(prop string) any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.vp.Get(prop)
}

func (a *AppConfig) SetProp(prop string, val any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.vp.Set(prop, val)
	a.bools.Del(prop)
}

func (a *AppConfig) SetDefProp(prop string, defVal any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.vp.SetDefault(prop, defVal)
	a.bools.Del(prop)
}

func (a *AppConfig) HasProp(prop string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.vp.IsSet(prop)
}

func (a *AppConfig) GetPropInt(prop string) int {
	return cast.ToInt(a.get(prop))
}

func (a *AppConfig) GetPropBool(prop string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, _ := a.bools.GetElse(prop, func(k string) bool {
		return cast.ToBool(a.vp.Get(k))
	})
	return v
}

// Get prop as string, placeholders like "${LOCALE_FILE}" are resolved, see ResolveArg.
func (a *AppConfig) GetPropStr(prop string) string {
	return a.ResolveArg(cast.ToString(a.get(prop)))
}

// Apply "key=value" pairs from the environment first and then from args.
func (a *AppConfig) OverwriteConf(args []string) {
	for _, src := range [][]string{os.Environ(), args} {
		for k, vals := range ArgKeyVal(src) {
			if len(vals) > 1 {
				a.SetProp(k, vals)
				continue
			}
			a.SetProp(k, vals[0])
		}
	}
}

// Merge yaml config read from r over the current props. r is not closed.
func (a *AppConfig) LoadConfigFromReader(r io.Reader) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	defer a.bools.Clear()

	a.vp.SetConfigType("yml")
	if err := a.vp.MergeConfig(r); err != nil {
		return ErrConfigLoad.Wrap(err)
	}
	return nil
}

func (a *AppConfig) LoadConfigFromStr(s string) error {
	return a.LoadConfigFromReader(strings.NewReader(s))
}

// Merge yaml config file, empty path is ignored.
func (a *AppConfig) LoadConfigFromFile(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return ErrConfigLoad.WithInternalMsg("config file '%s' not found", path)
	}
	if err != nil {
		return ErrConfigLoad.Wrapf(err, "open '%s'", path)
	}
	defer f.Close()

	if err := a.LoadConfigFromReader(f); err != nil {
		return errs.WrapErrf(err, "failed to load config file '%s'", path)
	}
	dlog.Debugf("Loaded config file '%v'", path)
	return nil
}

// Replace each "${key}" in arg with the env variable key, or prop key when the env is empty.
// Unresolved placeholders are left as is.
func (a *AppConfig) ResolveArg(arg string) string {
	return placeholderPat.ReplaceAllStringFunc(arg, func(ph string) string {
		key := ph[2 : len(ph)-1]
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := cast.ToString(a.get(key)); v != "" {
			return v
		}
		return ph
	})
}

// Collect "key=value" args, args without '=' are skipped.
func ArgKeyVal(args []string) map[string][]string {
	kv := map[string][]string{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		kv[k] = append(kv[k], strings.TrimSpace(v))
	}
	return kv
}

// Path from "configFile=..." arg, explicit is false when it falls back to conf.yml.
func GuessConfigFilePath(args []string) (path string, explicit bool) {
	for _, arg := range args {
		if k, v, ok := strings.Cut(arg, "="); ok && k == configFileArg {
			if v = strings.TrimSpace(v); v != "" {
				return v, true
			}
		}
	}
	return defaultConfigFile, false
}
