package gmt

import (
	"fmt"
	"testing"

	"github.com/hsiuhsiu/gmt-go/pkg/gmt/logging"
)

// fakeGMT is an in-process stand-in for the native entry points.
type fakeGMT struct {
	enums map[string]int32

	next APIPointer
	live map[APIPointer]string

	createFails   bool
	callStatus    int32
	destroyStatus int32

	calls   []moduleCall
	created []createCall
	version [3]uint32
}

type moduleCall struct {
	api    APIPointer
	module string
	mode   int32
	args   string
}

type createCall struct {
	name      string
	pad, mode uint32
	print     uintptr
}

func newFakeGMT() *fakeGMT {
	return &fakeGMT{
		enums: map[string]int32{
			PadDefault:      2,
			SessionExternal: 2,
			ModuleCmd:       -1,
		},
		next: 0x1000,
		live: make(map[APIPointer]string),
	}
}

func (f *fakeGMT) entryPoints() entryPoints {
	return entryPoints{
		createSession: func(name string, pad, mode uint32, print uintptr) APIPointer {
			f.created = append(f.created, createCall{name: name, pad: pad, mode: mode, print: print})
			if f.createFails {
				return 0
			}
			api := f.next
			f.next += 0x10
			f.live[api] = name
			return api
		},
		getEnum: func(name string) int32 {
			v, ok := f.enums[name]
			if !ok {
				return enumNotFound
			}
			return v
		},
		callModule: func(api APIPointer, module string, mode int32, args string) int32 {
			f.calls = append(f.calls, moduleCall{api: api, module: module, mode: mode, args: args})
			if _, ok := f.live[api]; !ok {
				return 1
			}
			return f.callStatus
		},
		destroySession: func(api APIPointer) int32 {
			if _, ok := f.live[api]; !ok {
				return 1
			}
			delete(f.live, api)
			return f.destroyStatus
		},
	}
}

func (f *fakeGMT) withVersion(major, minor, patch uint32) *fakeGMT {
	f.version = [3]uint32{major, minor, patch}
	return f
}

func (f *fakeGMT) library(t *testing.T) *Library {
	t.Helper()
	ep := f.entryPoints()
	if f.version != [3]uint32{} {
		ep.getVersion = func(_ APIPointer, major, minor, patch *uint32) float32 {
			*major, *minor, *patch = f.version[0], f.version[1], f.version[2]
			return float32(f.version[0]) + float32(f.version[1])/10
		}
	}
	unloaded := false
	lib := newLibrary("libfake.so", Config{Logger: logging.Discard()}, ep, func() error {
		if unloaded {
			return fmt.Errorf("double unload")
		}
		unloaded = true
		return nil
	})
	return lib
}
