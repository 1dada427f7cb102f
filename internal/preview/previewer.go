package preview

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/alecthomas/chroma/v2"

	"glimpse/internal/entry"
	"glimpse/internal/files"
	"glimpse/internal/logging"
	"glimpse/internal/strutil"
)

// MaxFileSize is the ceiling above which files are not previewed. 4 MiB.
const MaxFileSize = 4 * 1024 * 1024

// maxPlainTextLines bounds the bounded plain text preview constructor.
// Enough for most terminal sizes.
const maxPlainTextLines = 200

// defaultMaxConcurrent bounds how many highlight computations run at once.
const defaultMaxConcurrent = 8

// Options configures a Previewer.
type Options struct {
	// Theme is the highlighting theme name. Empty selects the library
	// default.
	Theme string
	// CacheCapacity bounds the preview cache. Zero selects the default.
	CacheCapacity int
	// MaxConcurrent bounds parallel highlight computations. Zero selects
	// the default.
	MaxConcurrent int
}

// Previewer computes previews for entries. Preview never blocks on file
// content or highlighting: it returns the best currently known result and
// schedules background work as a side effect.
//
// Per entry identifier the cache only ever moves forward:
// absent, then Loading or a terminal status, then a terminal result.
// Terminal results are never replaced.
type Previewer struct {
	cache  *Cache
	theme  *chroma.Style
	sem    chan struct{}
	logger *logging.AppLogger
}

// NewPreviewer builds a Previewer. The theme is resolved once here and
// shared read-only across all background computations.
func NewPreviewer(opts Options, logger *logging.AppLogger) *Previewer {
	if logger == nil {
		logger = logging.GetDefault()
	}
	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Previewer{
		cache:  NewCache(opts.CacheCapacity),
		theme:  ThemeByName(opts.Theme),
		sem:    make(chan struct{}, maxConcurrent),
		logger: logger,
	}
}

// Preview returns the current best-known preview for the entry. A cold
// text entry gets a Loading placeholder immediately while the highlighted
// version is computed in the background; everything else resolves
// synchronously. All failures degrade to a cached NotSupported result,
// never an error.
func (p *Previewer) Preview(e entry.Entry) *Preview {
	// Fast path plus reservation in one atomic step: a hit returns the
	// cached result (including the Loading sentinel for in-flight
	// entries); a miss installs the placeholder so no concurrent caller
	// can schedule duplicate work for the same identifier.
	cached, reserved := p.cache.GetOrReserve(e.Name, Loading(e.Name))
	if !reserved {
		return cached
	}

	p.logger.Debug("No preview in cache", "entry", e.Name)

	if size, err := files.FileSize(e.Name); err == nil && size > MaxFileSize {
		p.logger.Debug("File too large", "entry", e.Name, "size", size)
		return p.finish(e.Name, TooLarge(e.Name, size))
	}

	switch fileType := files.FileTypeOf(e.Name); fileType {
	case files.Text:
		f, err := os.Open(e.Name)
		if err != nil {
			p.logger.Warn("Error opening file", "entry", e.Name, "error", err)
			return p.finish(e.Name, NotSupported(e.Name))
		}
		// the placeholder is already cached; hand the open handle to the
		// background computation and return immediately
		p.computeHighlightedInBackground(e.Name, f)
		return cached
	default:
		p.logger.Debug("Unsupported file type", "entry", e.Name, "type", fileType)
		return p.finish(e.Name, NotSupported(e.Name))
	}
}

// Cached returns the cached preview for an identifier without side
// effects.
func (p *Previewer) Cached(name string) (*Preview, bool) {
	return p.cache.Get(name)
}

// finish replaces the reservation with a terminal preview and returns it.
func (p *Previewer) finish(name string, result *Preview) *Preview {
	p.cache.Insert(name, result)
	return result
}

// computeHighlightedInBackground reads, preprocesses and highlights the
// file on a worker goroutine, then publishes the outcome through the
// cache. Any failure overwrites the Loading sentinel with NotSupported so
// no identifier is ever stuck loading.
func (p *Previewer) computeHighlightedInBackground(name string, f *os.File) {
	go func() {
		p.sem <- struct{}{}
		defer func() { <-p.sem }()
		defer f.Close()

		p.logger.Debug("Computing highlights in the background", "entry", name)
		defer p.logger.LogPerformance("highlight "+name, time.Now())

		lines, err := readPreprocessedLines(f)
		if err != nil {
			p.logger.Warn("Error reading file", "entry", name, "error", err)
			p.cache.Insert(name, NotSupported(name))
			return
		}

		highlighted, err := HighlightLines(name, lines, p.theme)
		if err != nil {
			p.logger.Warn("Error computing highlights", "entry", name, "error", err)
			p.cache.Insert(name, NotSupported(name))
			return
		}

		p.cache.Insert(name, NewHighlighted(name, highlighted))
		p.logger.Debug("Inserted highlighted preview into cache", "entry", name)
	}()
}

// readPreprocessedLines reads every line of f, sanitized and re-terminated
// with the newline the line-oriented grammars expect.
func readPreprocessedLines(f *os.File) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strutil.PreprocessLine(line)+"\n")
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// PlainTextPreview builds an unstyled, bounded preview of the file at
// path, capped at 200 sanitized lines. Read failures degrade to
// NotSupported like everywhere else.
func PlainTextPreview(title, path string) *Preview {
	f, err := os.Open(path)
	if err != nil {
		return NotSupported(title)
	}
	defer f.Close()

	lines := make([]string, 0, maxPlainTextLines)
	reader := bufio.NewReader(f)
	for len(lines) < maxPlainTextLines {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strutil.PreprocessLine(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return NotSupported(title)
		}
	}
	return NewPlainText(title, lines)
}
