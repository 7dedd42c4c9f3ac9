package textfile

import (
	"bytes"
	"os"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
	"github.com/NovaOrdis/std.shlib/pkg/logging"
)

// Move replaces destination with source. Both must be existing regular
// files with different content; identical content is an ErrIdenticalContent
// error. The content is staged next to destination and renamed over it, so
// source and destination may live on different filesystems. Destination
// takes the permission bits of source. On success source no longer exists.
func (e *Editor) Move(source, destination string) (Result, error) {
	done := logging.LogOperationStart(e.logger, "move")
	defer done()

	srcContent, srcInfo, err := e.readRegular(source, "source")
	if err != nil {
		return Result{Path: destination}, err
	}
	dstContent, _, err := e.readRegular(destination, "destination")
	if err != nil {
		return Result{Path: destination}, err
	}

	if bytes.Equal(srcContent, dstContent) {
		return Result{Path: destination}, errors.Newf(errors.ErrIdenticalContent,
			"source file %s and destination file %s are identical", source, destination).
			WithDetail("source", source).
			WithDetail("destination", destination)
	}

	result, err := e.commit("move", destination, srcInfo.Mode().Perm(), dstContent, srcContent)
	if err != nil || !result.Committed {
		return result, err
	}

	if err := e.fs.Remove(source); err != nil && !os.IsNotExist(err) {
		return result, errors.Wrapf(err, errors.ErrFileAccess,
			"%s was installed over %s but could not be removed", source, destination).
			WithDetail("source", source).
			WithDetail("destination", destination)
	}

	e.logger.Trace().Str("source", source).Str("destination", destination).Msg("Moved")
	return result, nil
}
