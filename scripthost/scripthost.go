package scripthost

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/lars-frogner/impact-wire/errors"
)

// Host owns a wazero runtime that guest setup scripts are compiled into.
// Scripts produce construction buffers in their linear memory and hand them
// to the embedder through the packed pointer convention (see BuildBuffer).
type Host struct {
	runtime wazero.Runtime
	log     *zap.Logger
}

// Config holds configuration for host creation.
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in 64KB pages.
	// 0 means the wazero default.
	MemoryLimitPages uint32
}

// New creates a host with the given configuration. Pass nil for defaults.
func New(ctx context.Context, cfg *Config) (*Host, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	return &Host{
		runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg),
		log:     Logger(),
	}, nil
}

// Close releases the runtime and every script compiled into it.
func (h *Host) Close(ctx context.Context) error {
	return h.runtime.Close(ctx)
}

// LoadScript compiles a guest script from its wasm bytes.
func (h *Host) LoadScript(ctx context.Context, wasmBytes []byte) (*Script, error) {
	compiled, err := h.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseScript, errors.KindInvalidData, err, "compile script")
	}
	return &Script{host: h, compiled: compiled}, nil
}

// Script is a compiled guest script.
type Script struct {
	host     *Host
	compiled wazero.CompiledModule
}

// Close releases the compiled script.
func (s *Script) Close(ctx context.Context) error {
	return s.compiled.Close(ctx)
}

// Instantiate creates a running instance of the script. Instances are
// anonymous so several can run in parallel; each instance is single-threaded
// and not safe for concurrent use.
func (s *Script) Instantiate(ctx context.Context) (*Instance, error) {
	modConfig := wazero.NewModuleConfig().WithName("")
	instance, err := s.host.runtime.InstantiateModule(ctx, s.compiled, modConfig)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseScript, errors.KindInvalidData, err, "instantiate script")
	}
	return &Instance{
		instance:  instance,
		funcCache: make(map[string]api.Function),
		log:       s.host.log,
	}, nil
}

// Instance is a running guest script.
// It is NOT safe for concurrent use from multiple goroutines.
type Instance struct {
	instance  api.Module
	funcCache map[string]api.Function
	cacheMu   sync.RWMutex
	log       *zap.Logger
}

// exportedFunction returns an exported function, caching lookups.
func (i *Instance) exportedFunction(name string) api.Function {
	i.cacheMu.RLock()
	fn, ok := i.funcCache[name]
	i.cacheMu.RUnlock()
	if ok {
		return fn
	}
	fn = i.instance.ExportedFunction(name)
	if fn != nil {
		i.cacheMu.Lock()
		i.funcCache[name] = fn
		i.cacheMu.Unlock()
	}
	return fn
}

// BuildBuffer calls the named exported setup function and copies the
// construction buffer it produced out of guest memory.
//
// The guest convention: the export takes u64 arguments and returns one
// packed u64 with the buffer pointer in the upper 32 bits and the byte
// length in the lower 32 bits. The returned slice is a copy; the guest may
// reuse or free its memory afterwards.
func (i *Instance) BuildBuffer(ctx context.Context, name string, args ...uint64) ([]byte, error) {
	fn := i.exportedFunction(name)
	if fn == nil {
		return nil, errors.New(errors.PhaseScript, errors.KindNotFound).
			Detail("script exports no function %q", name).
			Build()
	}

	results, err := fn.Call(ctx, args...)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseScript, errors.KindInvalidData, err, "call "+name)
	}
	if len(results) != 1 {
		return nil, errors.New(errors.PhaseScript, errors.KindInvalidData).
			Detail("%s returned %d values, expected one packed pointer", name, len(results)).
			Build()
	}

	ptr, length := UnpackPtrLen(results[0])
	if length == 0 {
		return nil, nil
	}

	mem := i.instance.Memory()
	if mem == nil {
		return nil, errors.New(errors.PhaseScript, errors.KindInvalidData).
			Detail("script has no linear memory").
			Build()
	}
	data, ok := mem.Read(ptr, length)
	if !ok {
		return nil, errors.New(errors.PhaseScript, errors.KindInvalidData).
			Detail("buffer [%d, %d) is outside script memory", ptr, uint64(ptr)+uint64(length)).
			Build()
	}

	i.log.Debug("read construction buffer from script",
		zap.String("export", name),
		zap.Uint32("ptr", ptr),
		zap.Uint32("len", length))

	out := make([]byte, length)
	copy(out, data)
	return out, nil
}

// Close releases the instance.
func (i *Instance) Close(ctx context.Context) error {
	if i.instance == nil {
		return nil
	}
	err := i.instance.Close(ctx)
	i.instance = nil
	i.funcCache = nil
	return err
}

// PackPtrLen packs a guest pointer and byte length into the single u64 the
// setup convention returns.
func PackPtrLen(ptr, length uint32) uint64 {
	return uint64(ptr)<<32 | uint64(length)
}

// UnpackPtrLen splits a packed pointer/length word.
func UnpackPtrLen(packed uint64) (ptr, length uint32) {
	return uint32(packed >> 32), uint32(packed)
}
