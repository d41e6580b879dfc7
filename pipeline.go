package mrpt

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/HitLumino/mrpt/xpm"
	"github.com/sirupsen/logrus"
)

const (
	numWorkers = 10
	extension  = ".xpm"
	// Ignore any file greater than 64 MB
	maxFileSize = 64 << (10 * 2)
)

func (l *Library) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || info.Size() > maxFileSize {
				return nil
			}

			if strings.ToLower(filepath.Ext(file)) != extension {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (l *Library) fileWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if err := l.indexFile(file); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func (l *Library) indexFile(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha1.New()
	lines, err := xpm.ReadLines(io.TeeReader(f, h))
	sha := fmt.Sprintf("%X", h.Sum(nil))

	log := l.logger.WithFields(logrus.Fields{
		"file": file,
		"sha1": sha,
	})

	if err != nil {
		log.WithError(err).Warn("Skipping unreadable pixmap")
		return nil
	}

	m, hdr, _, err := xpm.DecodePalette(lines, false)
	if err != nil {
		log.WithError(err).Warn("Skipping malformed pixmap")
		return nil
	}

	id, err := l.catalog.Add(Pixmap{
		SHA1:   sha,
		Name:   strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
		Width:  hdr.Width,
		Height: hdr.Height,
		Colors: hdr.Colors,
	}, m)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	log.WithField("id", id).Info("Indexed pixmap")

	return nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path and adds every XPM file found to the catalog. Files that
// fail to decode are logged and skipped.
func (l *Library) Scan(path string) error {
	if l.catalog == nil {
		return errNoCatalog
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := l.findFiles(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errc, err := l.fileWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
