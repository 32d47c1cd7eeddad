package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonhull/pngme"
	"github.com/simonhull/pngme/internal/digest"
	"github.com/simonhull/pngme/internal/registry"
)

func runEncode(ctx context.Context, e *env, args []string) int {
	fs := e.newFlagSet("encode", "[-backup suffix] <file> <chunk-type> <message> [output]")
	backup := fs.String("backup", "", "keep the original file with this suffix appended")
	pos, code, ok := e.parse(fs, args, 3, 4)
	if !ok {
		return code
	}
	path, chunkType, message := pos[0], pos[1], pos[2]
	output := path
	if len(pos) == 4 {
		output = pos[3]
	}

	file, err := pngme.OpenContext(ctx, path)
	if err != nil {
		e.log.Error("open failed", "path", path, "err", err)
		return ExitFailure
	}
	e.log.Debug("parsed file", "path", path, "chunks", file.Len(), "size", file.Size)

	if err := file.Embed(chunkType, message); err != nil {
		if errors.Is(err, pngme.ErrUnsafeChunkType) {
			fmt.Fprintln(e.stderr, err)
			return ExitFailure
		}
		e.log.Error("embed failed", "chunk_type", chunkType, "err", err)
		return ExitFailure
	}

	var opts []pngme.SaveOption
	if *backup != "" {
		opts = append(opts, pngme.WithBackup(*backup))
	}
	if err := file.SaveAs(output, opts...); err != nil {
		e.log.Error("save failed", "path", output, "err", err)
		return ExitFailure
	}
	e.log.Debug("wrote file", "path", output, "size", file.PNG.Size())

	fmt.Fprintln(e.stdout, "message embedded successfully")
	return ExitOK
}

func runDecode(ctx context.Context, e *env, args []string) int {
	fs := e.newFlagSet("decode", "<file> <chunk-type>")
	pos, code, ok := e.parse(fs, args, 2, 2)
	if !ok {
		return code
	}
	path, chunkType := pos[0], pos[1]

	file, err := pngme.OpenContext(ctx, path)
	if err != nil {
		e.log.Error("open failed", "path", path, "err", err)
		return ExitFailure
	}

	msg, err := file.Message(chunkType)
	switch {
	case errors.Is(err, pngme.ErrChunkNotFound):
		fmt.Fprintln(e.stdout, "no message decoded")
		return ExitOK
	case err != nil:
		e.log.Error("decode failed", "path", path, "chunk_type", chunkType, "err", err)
		return ExitFailure
	}

	fmt.Fprintln(e.stdout, msg)
	return ExitOK
}

func runRemove(ctx context.Context, e *env, args []string) int {
	fs := e.newFlagSet("remove", "[-backup suffix] <file> <chunk-type>")
	backup := fs.String("backup", "", "keep the original file with this suffix appended")
	pos, code, ok := e.parse(fs, args, 2, 2)
	if !ok {
		return code
	}
	path, chunkType := pos[0], pos[1]

	file, err := pngme.OpenContext(ctx, path)
	if err != nil {
		e.log.Error("open failed", "path", path, "err", err)
		return ExitFailure
	}

	removed, err := file.Remove(chunkType)
	switch {
	case errors.Is(err, pngme.ErrChunkNotFound):
		fmt.Fprintln(e.stdout, "no message to remove")
		return ExitOK
	case err != nil:
		e.log.Error("remove failed", "path", path, "chunk_type", chunkType, "err", err)
		return ExitFailure
	}
	e.log.Debug("removed chunk", "chunk", removed.String())

	var opts []pngme.SaveOption
	if *backup != "" {
		opts = append(opts, pngme.WithBackup(*backup))
	}
	if err := file.Save(opts...); err != nil {
		e.log.Error("save failed", "path", path, "err", err)
		return ExitFailure
	}

	fmt.Fprintln(e.stdout, "message removed")
	return ExitOK
}

func runPrint(ctx context.Context, e *env, args []string) int {
	fs := e.newFlagSet("print", "[-all] [-digest] <file>...")
	all := fs.Bool("all", false, "list every chunk, not only those after IEND")
	withDigest := fs.Bool("digest", false, "append the payload CID to each line")
	pos, code, ok := e.parse(fs, args, 1, -1)
	if !ok {
		return code
	}

	files, err := pngme.OpenMany(ctx, pos)
	if err != nil {
		e.log.Error("open failed", "err", err)
		return ExitFailure
	}

	for _, file := range files {
		chunks := file.Trailing()
		if *all {
			chunks = file.Chunks()
		}
		e.log.Debug("listing chunks", "path", file.Path, "count", len(chunks))

		for _, c := range chunks {
			line := c.Type().String()
			if *all {
				if d, ok := registry.Lookup(line); ok {
					line += "\t" + d.Name
				} else {
					line += "\t-"
				}
			}
			if *withDigest {
				line += "\t" + digest.PayloadString(c.Data())
			}
			if len(files) > 1 {
				line = file.Path + ": " + line
			}
			fmt.Fprintln(e.stdout, line)
		}
	}

	return ExitOK
}

func runVersion(_ context.Context, e *env, args []string) int {
	fs := e.newFlagSet("version", "")
	if _, code, ok := e.parse(fs, args, 0, 0); !ok {
		return code
	}

	fmt.Fprintln(e.stdout, pngme.GetVersionInfo())
	return ExitOK
}
