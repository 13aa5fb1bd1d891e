package engine

import (
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/itkwasm/wasm-pipeline/errors"
)

// WasiVersion is the WASI snapshot a guest module imports from (spec.md
// §4.1: "wasi_version(module) ... inspects the module's imports to
// classify the WASI snapshot version").
type WasiVersion string

const (
	WasiUnstable         WasiVersion = "wasi_unstable"
	WasiSnapshotPreview1 WasiVersion = wasi_snapshot_preview1.ModuleName
)

// detectWasiVersion scans a compiled module's imported functions for a
// known WASI host module name, the same way wazero's own CLI
// (cmd/wazero's detectImports) classifies a guest binary before choosing
// which host module to bind it against. It fails with
// errors.UnsupportedWasiVersion if no import names a recognized snapshot;
// if a module imports from both (never expected from a single itk-wasm
// toolchain), the first one encountered, in import-index order, wins.
func detectWasiVersion(imports []api.FunctionDefinition) (WasiVersion, error) {
	for _, f := range imports {
		moduleName, _, _ := f.Import()
		switch moduleName {
		case string(WasiSnapshotPreview1):
			return WasiSnapshotPreview1, nil
		case string(WasiUnstable):
			return WasiUnstable, nil
		}
	}
	return "", errors.UnsupportedWasiVersion("no wasi_unstable or wasi_snapshot_preview1 import found")
}
