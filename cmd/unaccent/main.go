// Command unaccent removes diacritics from text files or standard input and writes
// the result to standard output.
//
//	unaccent [-languages finnish,german] [-check] [-progress] [-nfc=false] [file...]
//	unaccent -html [-select "h1, p"] [file...]
//
// With -check nothing is transformed. Every line that contains a mapped character
// is printed with its position and the exit status is 1 if there was at least one.
// With -html the input is parsed as HTML documents and only the text content of the
// elements matched by -select is changed.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/joho/godotenv"
	"github.com/juho05/diacritics"
	"github.com/juho05/diacritics/config"
	"github.com/juho05/diacritics/markup"
	"github.com/juho05/diacritics/repos"
	"github.com/juho05/diacritics/repos/postgres"
	"github.com/juho05/diacritics/util"
	"github.com/juho05/log"
	"github.com/schollz/progressbar/v3"
)

type options struct {
	check   bool
	compose bool
}

// process copies r to w line by line with diacritics removed. In check mode lines
// containing diacritics are reported instead. onLine is called with the byte length of
// every line read. found reports whether any line contained diacritics.
func process(name string, r io.Reader, w io.Writer, m *diacritics.Mapper, opts options, onLine func(n int)) (found bool, err error) {
	reader := bufio.NewReader(r)
	lineNr := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lineNr++
			if onLine != nil {
				onLine(len(line))
			}
			text := line
			if opts.compose {
				text = util.Compose(text)
			}
			if opts.check {
				if m.HasDiacritics(text, nil) {
					found = true
					if _, werr := fmt.Fprintf(w, "%s:%d: %s\n", name, lineNr, strings.TrimRight(line, "\r\n")); werr != nil {
						return found, werr
					}
				}
			} else {
				result := m.RemoveDiacritics(text, nil)
				found = found || result != text
				if _, werr := io.WriteString(w, result); werr != nil {
					return found, werr
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return found, nil
			}
			return found, fmt.Errorf("read %s: %w", name, err)
		}
	}
}

func progressBar(file *os.File, description string) (*progressbar.ProgressBar, error) {
	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file stats: %w", err)
	}
	return progressbar.NewOptions64(
		stat.Size(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
	), nil
}

func processFile(path string, w io.Writer, m *diacritics.Mapper, opts options, showProgress bool) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	var onLine func(n int)
	if showProgress {
		bar, err := progressBar(file, path)
		if err != nil {
			return false, err
		}
		defer bar.Finish()
		onLine = func(n int) {
			bar.Add(n)
		}
	}
	return process(path, file, w, m, opts, onLine)
}

func processHTML(paths []string, w io.Writer, m *diacritics.Mapper, sel cascadia.Matcher) error {
	if len(paths) == 0 {
		_, err := markup.RemoveDiacritics(os.Stdin, w, m, sel)
		return err
	}
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		changed, err := markup.RemoveDiacritics(file, w, m, sel)
		file.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Tracef("%s: changed %d text nodes", path, changed)
	}
	return nil
}

// buildMapper merges the languages and the custom mapping sets of the config.
// The database is only opened if custom sets are configured.
func buildMapper(conf config.Config) (*diacritics.Mapper, error) {
	var db repos.DB
	if len(conf.CustomSets) > 0 {
		pg, err := postgres.NewDB(conf.DSN(), conf)
		if err != nil {
			return nil, err
		}
		defer pg.Close()
		db = pg
	}
	return repos.BuildMapper(context.Background(), db, conf.Languages, conf.CustomSets, conf.CustomSetsFirst)
}

// run reports failed if -check is set and any input contains diacritics.
func run(conf config.Config) (failed bool, err error) {
	languages := flag.String("languages", strings.Join(conf.Languages, ","), "comma separated list of languages in precedence order")
	check := flag.Bool("check", false, "only report lines containing diacritics")
	showProgress := flag.Bool("progress", false, "show a progress bar on stderr for every input file")
	compose := flag.Bool("nfc", conf.ComposeInput, "compose the input to NFC before removing diacritics")
	htmlMode := flag.Bool("html", false, "treat the input as HTML documents")
	selector := flag.String("select", markup.DefaultSelector, "CSS selector of the HTML elements to change (requires -html)")
	flag.Parse()

	if *htmlMode && *check {
		return false, errors.New("-check cannot be combined with -html")
	}

	conf.Languages = util.Map(strings.Split(*languages, ","), strings.TrimSpace)
	if *languages == "" {
		conf.Languages = nil
	}
	m, err := buildMapper(conf)
	if err != nil {
		return false, err
	}
	log.Tracef("using providers %v", m.Providers())

	opts := options{
		check:   *check,
		compose: *compose,
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *htmlMode {
		sel, err := markup.Compile(*selector)
		if err != nil {
			return false, err
		}
		return false, processHTML(flag.Args(), out, m, sel)
	}

	if flag.NArg() == 0 {
		found, err := process("stdin", os.Stdin, out, m, opts, nil)
		return found && opts.check, err
	}
	for _, path := range flag.Args() {
		found, err := processFile(path, out, m, opts, *showProgress)
		failed = failed || (found && opts.check)
		if err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func main() {
	_ = godotenv.Load()

	conf, errs := config.Load(os.Environ())
	if len(errs) > 0 {
		for _, e := range errs {
			log.Errorf("ERROR: %s", e)
		}
		log.Fatalf("ERROR: failed to load config")
	}

	log.SetSeverity(conf.LogLevel)
	log.SetOutput(conf.LogFile)

	failed, err := run(conf)
	if err != nil {
		log.Fatalf("%s", err)
	}
	if failed {
		os.Exit(1)
	}
}
