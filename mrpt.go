/*
Package mrpt is a library for working with XPM pixmaps: converting them to
other image formats, inspecting their palettes and keeping a catalog of
decoded pixmaps.
*/
package mrpt

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var errNoCatalog = errors.New("no catalog")

type Library struct {
	catalog *Catalog
	logger  *logrus.Logger
}

// New returns a Library using the given catalog, which may be nil if only
// conversion and inspection are needed.
func New(catalog *Catalog, logger *logrus.Logger) *Library {
	return &Library{
		catalog: catalog,
		logger:  logger,
	}
}

func (l *Library) Close() error {
	if l.catalog == nil {
		return nil
	}
	return l.catalog.Close()
}
