// Copyright (C) 2023 CYBERCRYPT
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package log

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// Ctx returns the logger associated with the given context. If no logger is
// associated, a disabled logger is returned.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// CopyCtxLogger returns a copy of the context with its own copy of the logger,
// so that fields added during a call do not leak into the caller's logger.
func CopyCtxLogger(ctx context.Context) context.Context {
	logger := zerolog.Ctx(ctx).With().Logger()
	return logger.WithContext(ctx)
}

// WithMethod adds a method field to the context logger.
func WithMethod(ctx context.Context, method string) {
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("method", method)
	})
}

// WithRequestID adds a randomly generated request ID field to the context
// logger. The ID is only generated when the logger is enabled, and a failure
// to generate one skips the field rather than failing the call.
func WithRequestID(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		return
	}
	rid, err := uuid.NewV4()
	if err != nil {
		return
	}
	logger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Stringer("rid", rid)
	})
}
