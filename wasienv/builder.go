package wasienv

import (
	"path/filepath"

	"github.com/tetratelabs/wazero"
)

// Builder accumulates argv, env, and preopened directories for one run
// (spec.md §4.2). The zero value is ready to use.
type Builder struct {
	args     []string
	env      [][2]string
	preopens map[string]string // hostPath -> guestPath, deduplicated by hostPath
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{preopens: make(map[string]string)}
}

// WithArgs sets argv. Per spec.md §6, argv[0] is a host-chosen program
// name; callers typically pass "itk-wasm-pipeline" followed by the
// pipeline's own arguments.
func (b *Builder) WithArgs(args ...string) *Builder {
	b.args = args
	return b
}

// WithEnv adds one environment variable.
func (b *Builder) WithEnv(key, value string) *Builder {
	b.env = append(b.env, [2]string{key, value})
	return b
}

// WithPreopen maps a host directory to a guest-visible path, the general
// form of C2's "map of guest-path->host-path". Repeated calls with the
// same hostPath are deduplicated, keeping the first guestPath supplied.
func (b *Builder) WithPreopen(hostPath, guestPath string) *Builder {
	if b.preopens == nil {
		b.preopens = make(map[string]string)
	}
	if _, exists := b.preopens[hostPath]; !exists {
		b.preopens[hostPath] = guestPath
	}
	return b
}

// WithFilePayloadDir applies the default TextFile/BinaryFile preopen policy
// (spec.md §4.2): the parent directory of a file payload's path is
// preopened under its own path (guest sees the same absolute path as the
// host).
func (b *Builder) WithFilePayloadDir(path string) *Builder {
	dir := filepath.Dir(path)
	return b.WithPreopen(dir, dir)
}

// Build finalizes the accumulated state into a wazero.ModuleConfig ready
// to instantiate a module.
func (b *Builder) Build() wazero.ModuleConfig {
	cfg := wazero.NewModuleConfig().WithArgs(b.args...)
	for _, kv := range b.env {
		cfg = cfg.WithEnv(kv[0], kv[1])
	}

	if len(b.preopens) > 0 {
		fsCfg := wazero.NewFSConfig()
		for hostPath, guestPath := range b.preopens {
			fsCfg = fsCfg.WithDirMount(hostPath, guestPath)
		}
		cfg = cfg.WithFSConfig(fsCfg)
	}
	return cfg
}

// Preopens returns the deduplicated set of host directories that would be
// preopened, for tests and diagnostics.
func (b *Builder) Preopens() map[string]string {
	out := make(map[string]string, len(b.preopens))
	for k, v := range b.preopens {
		out[k] = v
	}
	return out
}
