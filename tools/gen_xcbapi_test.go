package main

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = `
#ifndef __XCB_H__
#define __XCB_H__
#include <sys/types.h>

#ifdef __GNUC__
#define XCB_PACKED __attribute__((__packed__))
#else
#define XCB_PACKED
#endif

#define X_PROTOCOL 11
#define XCB_CONN_ERROR 1
#define XCB_CONN_CLOSED_EXT_NOTSUPPORTED 2
#define XCB_TYPE_PAD(T,I) (-(I) & (sizeof(T) > 4 ? 3 : sizeof(T) - 1))
#define XCB_NONE 0L
#define XCB_EVENT_MASK 0x10u

typedef struct xcb_connection_t xcb_connection_t;

typedef struct {
    unsigned int sequence;
} xcb_void_cookie_t;

typedef void (*xcb_callback_t)(xcb_connection_t *c, int xcb_not_a_function);

/**
 * @brief Forces any buffered output to be written to the server.
 */
int xcb_flush(xcb_connection_t *c);

uint32_t xcb_get_maximum_request_length(xcb_connection_t *c);

xcb_connection_t *xcb_connect(const char *displayname, int *screenp);

int xcb_connection_has_error(xcb_connection_t *c);

void xcb_disconnect(xcb_connection_t *c);

uint32_t xcb_generate_id(xcb_connection_t *c);

int xcb_connect_to_fd(int fd, void *auth_info);

int xcb_flush(xcb_connection_t *c);

static inline int xcb_inline_helper(void) { return 0; }

int unrelated_function(void);

#endif
`

func TestCollectDeclarations(t *testing.T) {
	decls, err := collectDeclarations(context.Background(), []byte(testHeader))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"xcb_flush",
		"xcb_get_maximum_request_length",
		"xcb_connect",
		"xcb_connection_has_error",
		"xcb_disconnect",
		"xcb_generate_id",
		"xcb_connect_to_fd",
	}, decls.functions)

	assert.Equal(t, []define{
		{Name: "XCB_CONN_ERROR", Value: "1"},
		{Name: "XCB_CONN_CLOSED_EXT_NOTSUPPORTED", Value: "2"},
		{Name: "XCB_NONE", Value: "0"},
		{Name: "XCB_EVENT_MASK", Value: "0x10"},
	}, decls.defines)
}

func TestIntLiteral(t *testing.T) {
	tests := []struct {
		body string
		want string
		ok   bool
	}{
		{"1", "1", true},
		{" 0L ", "0", true},
		{"0x10u", "0x10", true},
		{"6000UL", "6000", true},
		{"", "", false},
		{"__attribute__((__packed__))", "", false},
		{"(-(I) & 3)", "", false},
	}
	for _, tt := range tests {
		got, ok := intLiteral(tt.body)
		assert.Equal(t, tt.ok, ok, tt.body)
		assert.Equal(t, tt.want, got, tt.body)
	}
}

func TestFieldName(t *testing.T) {
	tests := map[string]string{
		"xcb_flush":                    "Flush",
		"xcb_generate_id":              "GenerateID",
		"xcb_connect_to_fd":            "ConnectToFD",
		"xcb_register_for_special_xge": "RegisterForSpecialXGE",
		"xcb_discard_reply64":          "DiscardReply64",
		"xcb_create_window_checked":    "CreateWindowChecked",
	}
	for in, want := range tests {
		assert.Equal(t, want, fieldName(in), in)
	}
}

func TestParseHeaderArg(t *testing.T) {
	spec, err := parseHeaderArg("/usr/include/xcb/xcb.h")
	require.NoError(t, err)
	assert.Equal(t, "/usr/include/xcb/xcb.h", spec.path)
	assert.Nil(t, spec.pattern)

	spec, err = parseHeaderArg("/usr/include/xcb/xproto.h=^xcb_(map|unmap)_window$")
	require.NoError(t, err)
	require.NotNil(t, spec.pattern)
	assert.True(t, spec.pattern.MatchString("xcb_map_window"))
	assert.False(t, spec.pattern.MatchString("xcb_map_window_checked"))

	_, err = parseHeaderArg("=^xcb_")
	assert.Error(t, err)

	_, err = parseHeaderArg("xcb.h=(")
	assert.Error(t, err)
}

func TestHeaderName(t *testing.T) {
	assert.Equal(t, "xcb/xproto.h", headerName(filepath.Join("usr", "include", "xcb", "xproto.h")))
}

func TestValidate(t *testing.T) {
	key := headerGroup{Source: "xcb/xcb.h"}
	for _, name := range keyFunctions {
		key.Functions = append(key.Functions, function{Name: name, Field: fieldName(name)})
	}
	assert.NoError(t, validate([]headerGroup{key}))

	assert.Error(t, validate([]headerGroup{{Source: "xcb/xcb.h"}}), "key functions are required")

	dup := headerGroup{Source: "xcb/xproto.h", Functions: []function{{Name: "xcb_connect", Field: "Connect"}}}
	assert.ErrorContains(t, validate([]headerGroup{key, dup}), "duplicate function")

	key.Defines = []define{{Name: "XCB_NONE", Value: "0"}}
	dupConst := headerGroup{Source: "xcb/xproto.h", Defines: []define{{Name: "XCB_NONE", Value: "0"}}}
	assert.ErrorContains(t, validate([]headerGroup{key, dupConst}), "duplicate constant")
}

func TestRunGeneratesCompilableTable(t *testing.T) {
	dir := t.TempDir()
	xcbDir := filepath.Join(dir, "xcb")
	require.NoError(t, os.MkdirAll(xcbDir, 0o755))
	header := filepath.Join(xcbDir, "xcb.h")
	require.NoError(t, os.WriteFile(header, []byte(testHeader), 0o644))
	proto := filepath.Join(xcbDir, "xproto.h")
	require.NoError(t, os.WriteFile(proto, []byte(`
#define XCB_MAP_NOTIFY 19
xcb_void_cookie_t xcb_map_window_checked(xcb_connection_t *c, xcb_window_t window);
xcb_void_cookie_t xcb_map_window(xcb_connection_t *c, xcb_window_t window);
xcb_void_cookie_t xcb_unmap_window(xcb_connection_t *c, xcb_window_t window);
`), 0o644))

	output := filepath.Join(dir, "api_gen.go")
	err := run(context.Background(), []string{header, proto + "=^xcb_(un)?map_window$"}, output)
	require.NoError(t, err)

	code, err := os.ReadFile(output)
	require.NoError(t, err)
	src := string(code)

	assert.True(t, strings.HasPrefix(src, "// Code generated by tools/gen_xcbapi.go; DO NOT EDIT."))
	assert.Contains(t, src, "//\txcb/xproto.h (filter: ^xcb_(un)?map_window$)")
	assert.Contains(t, src, `{"xcb_connect_to_fd", func(api *XcbApi) *uintptr { return &api.ConnectToFD }},`)
	assert.Contains(t, src, `{"xcb_unmap_window", func(api *XcbApi) *uintptr { return &api.UnmapWindow }},`)
	assert.NotContains(t, src, "MapWindowChecked")
	assert.NotContains(t, src, "XCB_MAP_NOTIFY", "the filter applies to constants too")
	assert.Contains(t, src, "const (\n\tXCB_CONN_ERROR                   = 1\n\tXCB_CONN_CLOSED_EXT_NOTSUPPORTED = 2\n")
	assert.Contains(t, src, "\tXCB_EVENT_MASK                   = 0x10\n)")
	assert.NotContains(t, src, "XCB_PACKED")
	assert.NotContains(t, src, "X_PROTOCOL")

	file, err := parser.ParseFile(token.NewFileSet(), output, code, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "xcbew", file.Name.Name)

	assert.Less(t, strings.Index(src, "xcb_flush"), strings.Index(src, "xcb_connect\""))
	assert.Less(t, strings.Index(src, "\"xcb_connect_to_fd\""), strings.Index(src, "\"xcb_map_window\""))
}

func TestRunWithoutConstantsOmitsBlock(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "xcb.h")
	require.NoError(t, os.WriteFile(header, []byte(testHeader), 0o644))

	output := filepath.Join(dir, "api_gen.go")
	require.NoError(t, run(context.Background(), []string{header + "=^xcb_"}, output))

	code, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(code), "const (")
	assert.Contains(t, string(code), "package xcbew\n\n// XcbApi holds")
}

func TestRunMissingHeader(t *testing.T) {
	err := run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.h")}, "")
	assert.Error(t, err)
}
