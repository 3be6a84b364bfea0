package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kilianc/ytml/internal/ytml/outfile"
	"github.com/kilianc/ytml/pkg/ytml"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: playground [flags]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Watches a directory of *.ytml sources, re-renders them on change")
		_, _ = fmt.Fprintln(os.Stderr, "and serves the rendered files over HTTP.")
		flag.PrintDefaults()
	}
	dirFlag := flag.String("dir", "playground", "directory of .ytml sources to watch")
	addrFlag := flag.String("addr", ":8080", "HTTP listen address")
	dialectFlag := flag.String("dialect", "html", "output dialect: html or jinja")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	var dialect *ytml.Dialect
	switch *dialectFlag {
	case "html":
		dialect = ytml.HTML
	case "jinja":
		dialect = ytml.Jinja
	default:
		fatal(fmt.Errorf("playground: unknown dialect %q (want html or jinja)", *dialectFlag))
	}

	dir, err := filepath.Abs(*dirFlag)
	if err != nil {
		fatal(err)
	}

	if err := renderAll(dir, dialect); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "playground: %v\n", err)
	}

	go func() {
		_, _ = fmt.Fprintf(os.Stderr, "Serving %s at http://localhost%s/\n", dir, *addrFlag)
		_, _ = fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop")
		fatal(http.ListenAndServe(*addrFlag, http.FileServer(http.Dir(dir))))
	}()

	if err := watchAndRender(dir, dialect); err != nil {
		fatal(err)
	}
}

func watchAndRender(dir string, dialect *ytml.Dialect) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()
	if err := watcher.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".ytml") {
				continue
			}
			// Editors fire several events per save; give the file a
			// moment to settle before reading it.
			time.Sleep(50 * time.Millisecond)
			if err := renderFile(ev.Name, dialect); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "playground: %v\n", err)
				continue
			}
			_, _ = fmt.Fprintf(os.Stderr, "rendered %s\n", ev.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintf(os.Stderr, "playground: watch error: %v\n", err)
		}
	}
}

func renderAll(dir string, dialect *ytml.Dialect) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".ytml") {
			continue
		}
		if err := renderFile(filepath.Join(dir, e.Name()), dialect); err != nil {
			return err
		}
	}
	return nil
}

func renderFile(pth string, dialect *ytml.Dialect) error {
	src, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	out, err := ytml.RenderText(src, dialect, true, 4)
	if err != nil {
		return fmt.Errorf("%s: %w", pth, err)
	}
	return outfile.WriteRenderedFile(pth+".html", []byte(out))
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
