//go:build windows

package version

import (
	"context"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/m-mizutani/goerr/v2"
)

// fsoReader asks the Scripting.FileSystemObject COM server for the file
// version resource, the same value Explorer shows in file properties.
type fsoReader struct{}

// NewReader returns the Reader for the current operating system.
func NewReader() Reader {
	return fsoReader{}
}

func (fsoReader) FileVersion(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// COM apartments are per OS thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		// S_FALSE: already initialized on this thread
		if oleErr, ok := err.(*ole.OleError); !ok || oleErr.Code() != 1 {
			return "", goerr.Wrap(err, "failed to initialize COM")
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("Scripting.FileSystemObject")
	if err != nil {
		return "", goerr.Wrap(err, "failed to create FileSystemObject")
	}
	defer unknown.Release()

	fso, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return "", goerr.Wrap(err, "failed to query IDispatch")
	}
	defer fso.Release()

	result, err := oleutil.CallMethod(fso, "GetFileVersion", path)
	if err != nil {
		return "", goerr.Wrap(err, "GetFileVersion failed")
	}
	defer func() { _ = result.Clear() }()

	return result.ToString(), nil
}
