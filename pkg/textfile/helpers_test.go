package textfile

import (
	"github.com/rs/zerolog"

	"github.com/NovaOrdis/std.shlib/pkg/filesystem"
)

func newTestEditor(opts ...Option) *Editor {
	return New(filesystem.NewOS(), append([]Option{WithLogger(zerolog.Nop())}, opts...)...)
}
