package xcbew

import (
	"github.com/go-kit/log/level"
)

//go:generate go run -C ../tools . -o ../xcbew/api_gen.go /usr/include/xcb/xcb.h "/usr/include/xcb/xproto.h=^xcb_(screen_next|setup_roots_iterator|create_window(_checked)?|change_window_attributes|destroy_window|(un)?map_window|configure_window|get_geometry(_reply)?|intern_atom(_reply)?|change_property)$"

// symbol binds an exported libxcb name to its slot in XcbApi.
type symbol struct {
	name string
	slot func(*XcbApi) *uintptr
}

// SymbolNames returns the required libxcb exports in resolution order.
func SymbolNames() []string {
	names := make([]string, len(xcbSymbols))
	for i, sym := range xcbSymbols {
		names[i] = sym.name
	}
	return names
}

// resolveSymbols walks the symbol table in order and fills a fresh XcbApi.
// It keeps going after a miss so the caller can report every absent export.
func resolveSymbols(cfg config, handle uintptr) (*XcbApi, []string) {
	api := &XcbApi{}
	var missing []string
	for _, sym := range xcbSymbols {
		addr, err := cfg.loader.Lookup(handle, sym.name)
		if err != nil || addr == 0 {
			level.Debug(cfg.logger).Log("msg", "symbol not resolved", "symbol", sym.name, "err", err)
			missing = append(missing, sym.name)
			continue
		}
		*sym.slot(api) = addr
	}
	if len(missing) > 0 {
		return nil, missing
	}
	return api, nil
}

func lookupSymbol(api *XcbApi, name string) (uintptr, bool) {
	if api == nil {
		return 0, false
	}
	for _, sym := range xcbSymbols {
		if sym.name == name {
			return *sym.slot(api), true
		}
	}
	return 0, false
}
