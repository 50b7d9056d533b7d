package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/orchestrator"
	"github.com/spf13/cobra"
)

// autoPlatform asks classify to pick the platform from the URL host.
const autoPlatform = "auto"

type classifyOptions struct {
	size  int64
	debug bool
}

// classifyOutput is the JSON line printed for every classified URL
type classifyOutput struct {
	URL      string         `json:"url"`
	Platform string         `json:"platform,omitempty"`
	Result   map[string]any `json:"result"`
	Error    string         `json:"error,omitempty"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var opts classifyOptions

	cmd := &cobra.Command{
		Use:   "classify <platform|auto> [url...]",
		Short: "Classify URLs with one platform and print one JSON result per line",
		Long: "Classify URLs with one platform and print one JSON result per line.\n" +
			"URLs are read from standard input when none is given. With 'auto' the\n" +
			"platform is chosen from the manifest domains matching each URL host.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClassify(args[0], args[1:], opts)
		},
	}

	cmd.Flags().Int64Var(&opts.size, "size", -1, "Response size in bytes attached to every URL (negative means unknown)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "Trace every analyzed input")
	return cmd
}

func (a *app) runClassify(platform string, urls []string, opts classifyOptions) error {
	cache := &wrapperCache{
		runner:   a.runner(),
		opts:     []classifier.WrapperOption{classifier.WithLogger(a.logger), classifier.WithDebug(opts.debug || a.cfg.VerifyConfig.Debug)},
		wrappers: make(map[string]*classifier.Wrapper),
	}

	if platform != autoPlatform {
		if _, err := cache.wrapper(platform); err != nil {
			return err
		}
	}

	var meta models.AccessMeta
	if opts.size >= 0 {
		size := opts.size
		meta.Size = &size
	}

	enc := json.NewEncoder(a.stdout)
	failed := false
	classify := func(url string) error {
		out := classifyOne(cache, platform, models.InputRecord{URL: url, Meta: meta})
		if out.Error != "" {
			failed = true
		}
		return enc.Encode(out)
	}

	if len(urls) == 0 {
		scanner := bufio.NewScanner(a.stdin)
		for scanner.Scan() {
			url := strings.TrimSpace(scanner.Text())
			if url == "" || strings.HasPrefix(url, "#") {
				continue
			}
			if err := classify(url); err != nil {
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read URLs from standard input: %w", err)
		}
	}
	for _, url := range urls {
		if err := classify(url); err != nil {
			return err
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

func classifyOne(cache *wrapperCache, platform string, rec models.InputRecord) classifyOutput {
	out := classifyOutput{URL: rec.URL, Platform: platform}

	if platform == autoPlatform {
		detected, err := cache.runner.Detect(rec.URL)
		if err != nil {
			out.Platform, out.Error = "", err.Error()
			return out
		}
		out.Platform = detected
	}

	w, err := cache.wrapper(out.Platform)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	result, err := w.Execute(rec)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Result = result.Fields()
	return out
}

// wrapperCache opens each platform wrapper once
type wrapperCache struct {
	runner   *orchestrator.Runner
	opts     []classifier.WrapperOption
	wrappers map[string]*classifier.Wrapper
}

func (c *wrapperCache) wrapper(name string) (*classifier.Wrapper, error) {
	if w, ok := c.wrappers[name]; ok {
		return w, nil
	}
	w, err := c.runner.Open(name, c.opts...)
	if err != nil {
		return nil, err
	}
	c.wrappers[name] = w
	return w, nil
}
