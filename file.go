package pngme

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/pngme/internal/types"
)

// File is a PNG read from disk, held fully in memory.
//
// File embeds *PNG, so chunk operations are available directly. Changes are
// kept in memory until Save or SaveAs is called:
//
//	file, err := pngme.Open("cat.png")
//	if err != nil {
//		return err
//	}
//	if err := file.Embed("ruSt", "hidden message"); err != nil {
//		return err
//	}
//	return file.Save()
type File struct {
	*PNG

	// Path the file was read from
	Path string

	// Size of the file on disk when it was opened
	Size int64
}

// Open reads and parses the PNG file at path.
//
// The whole file is read into memory, bounded by WithMaxSize. Parse errors
// are returned with the path attached.
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	size := stat.Size()

	if options.maxSize > 0 && size > options.maxSize {
		return nil, &types.FileTooLargeError{Path: path, Size: size, Limit: options.maxSize}
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return OpenBytes(data, path)
}

// OpenBytes parses PNG data that has already been read. path is recorded on
// the File and used by Save.
func OpenBytes(data []byte, path string) (*File, error) {
	p, err := Parse(data)
	if err != nil {
		var sigErr *types.BadSignatureError
		if errors.As(err, &sigErr) {
			sigErr.Path = path
			return nil, sigErr
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &File{
		PNG:  p,
		Path: path,
		Size: int64(len(data)),
	}, nil
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before starting.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple PNG files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, the first error is returned and no files are.
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			file, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return err
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Embed stores message in a new chunk of the given type, appended after the
// existing chunks.
//
// Critical chunk types are refused with *UnsafeChunkTypeError and the file is
// left unchanged.
func (f *File) Embed(chunkType, message string) error {
	t, err := ParseChunkType(chunkType)
	if err != nil {
		return err
	}
	if !t.IsSafeToWrite() {
		return &types.UnsafeChunkTypeError{Type: t.String()}
	}

	c, err := NewChunk(t, []byte(message))
	if err != nil {
		return err
	}

	f.AppendChunk(c)
	return nil
}

// Message returns the text payload of the first chunk of the given type.
func (f *File) Message(chunkType string) (string, error) {
	t, err := ParseChunkType(chunkType)
	if err != nil {
		return "", err
	}

	c, ok := f.ChunkByType(t)
	if !ok {
		return "", &types.ChunkNotFoundError{Type: t.String()}
	}
	return c.Text()
}

// Remove deletes the first chunk of the given type and returns it.
func (f *File) Remove(chunkType string) (Chunk, error) {
	t, err := ParseChunkType(chunkType)
	if err != nil {
		return Chunk{}, err
	}
	return f.RemoveChunk(t)
}
