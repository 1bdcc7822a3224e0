package log

import (
	"github.com/rs/zerolog"

	"github.com/omicsgo/featselect/pkg/errors"
)

// SetupWarnings routes featselect warnings through the given zerolog logger.
// Warning types that implement zerolog.LogObjectMarshaler are embedded as
// structured fields; anything else falls back to the plain error field.
// The wiring lives here rather than in pkg/errors so the error package
// never imports its consumers.
func SetupWarnings(logger zerolog.Logger) {
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.EmbedObject(obj)
		} else {
			event = event.Err(warning)
		}
		event.Msg(warning.Error())
	})
}
