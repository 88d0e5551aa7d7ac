// SPDX-License-Identifier: MIT

package metadata

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ppvstat/units"
)

// Field declares one metadata entry.
type Field struct {
	Key         string
	Description string
	Default     units.Quantity
	Strict      bool
}

// String renders "key (description)".
func (f Field) String() string {
	desc := f.Description
	if desc == "" {
		desc = "no description"
	}

	return fmt.Sprintf("%s (%s)", f.Key, desc)
}

// Schema is an ordered list of declared fields.
type Schema []Field

// Keys returns the declared keys in schema order.
func (s Schema) Keys() []string {
	keys := make([]string, len(s))
	for i, f := range s {
		keys[i] = f.Key
	}

	return keys
}

// Field returns the declaration for key.
func (s Schema) Field(key string) (Field, bool) {
	for _, f := range s {
		if f.Key == key {
			return f, true
		}
	}

	return Field{}, false
}

// Require returns a copy of s with the named fields marked strict.
// Unknown keys fail with ErrUnknownField.
func (s Schema) Require(keys ...string) (Schema, error) {
	out := append(Schema(nil), s...)
	for _, k := range keys {
		found := false
		for i := range out {
			if out[i].Key == k {
				out[i].Strict = true
				found = true
			}
		}
		if !found {
			return nil, metadataErrorf(opRequire, fmt.Errorf("%q: %w", k, ErrUnknownField))
		}
	}

	return out, nil
}

// Get returns rec[key] when present, otherwise the field default.
// A strict field that is absent fails with ErrMissingRequired.
func (s Schema) Get(rec Record, key string) (units.Quantity, error) {
	f, ok := s.Field(key)
	if !ok {
		return units.Quantity{}, metadataErrorf(opGet, fmt.Errorf("%q: %w", key, ErrUnknownField))
	}
	if v, ok := rec[key]; ok {
		return v, nil
	}
	if f.Strict {
		return units.Quantity{}, metadataErrorf(opGet, fmt.Errorf("%w: %s", ErrMissingRequired, f))
	}

	return f.Default, nil
}

// Missing lists the declared fields absent from rec, in schema order.
func (s Schema) Missing(rec Record) []Field {
	var out []Field
	for _, f := range s {
		if _, ok := rec[f.Key]; !ok {
			out = append(out, f)
		}
	}

	return out
}

// Validate checks rec against s once, before any derived quantity is read.
//
// Behavior:
//   - Any strict field missing: one error wrapping ErrMissingRequired that
//     names every missing strict field; nothing is logged.
//   - Otherwise: one warning per missing field, carrying the field and the
//     default it will read as.
//
// A nil logger falls back to the logrus standard logger.
func (s Schema) Validate(rec Record, logger logrus.FieldLogger) error {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	missing := s.Missing(rec)

	var merr *multierror.Error
	for _, f := range missing {
		if f.Strict {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s", ErrMissingRequired, f))
		}
	}
	if merr != nil {
		merr.ErrorFormat = joinFormat

		return metadataErrorf(opValidate, merr)
	}

	for _, f := range missing {
		logger.WithFields(logrus.Fields{
			"action":  "metadata_validate",
			"field":   f.String(),
			"default": f.Default.String(),
		}).Warn("missing metadata, using default")
	}

	return nil
}

// joinFormat renders an aggregate on one line.
func joinFormat(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}

	return strings.Join(parts, "; ")
}
