package javascript

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/airplusnepal/site/config"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

var engines = []api.Engine{
	{Name: api.EngineChrome, Version: "100"},
	{Name: api.EngineFirefox, Version: "100"},
	{Name: api.EngineSafari, Version: "15"},
	{Name: api.EngineEdge, Version: "100"},
}

// CompileJSTarget bundles every target with esbuild and writes
// <out_dir>/<name>_<hash>.js plus its source map under siteDir. The result
// maps target names to the public path of the emitted script.
func CompileJSTarget(siteDir string, targets map[string]config.JavascriptTarget) (map[string]string, error) {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	emitted := make(map[string]string, len(targets))
	for _, name := range names {
		target := targets[name]
		outDir := filepath.Join(siteDir, target.OutDir)
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return nil, errors.WithStack(err)
		}

		result := api.Build(api.BuildOptions{
			EntryPoints:       []string{filepath.Join(siteDir, target.Source)},
			Bundle:            true,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
			Engines:           engines,
			Sourcemap:         api.SourceMapExternal,
			Write:             false,
			Outdir:            outDir,
		})
		if len(result.Errors) > 0 {
			return nil, buildError(name, result.Errors)
		}

		script, err := writeHashed(outDir, result.OutputFiles)
		if err != nil {
			return nil, errors.Wrapf(err, "javascript target %s", name)
		}
		emitted[name] = "/" + filepath.ToSlash(filepath.Clean(target.OutDir)) + "/" + script
	}
	return emitted, nil
}

func buildError(target string, msgs []api.Message) error {
	texts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			texts = append(texts, fmt.Sprintf("%s:%d: %s", m.Location.File, m.Location.Line, m.Text))
			continue
		}
		texts = append(texts, m.Text)
	}
	return errors.Errorf("javascript target %s: %s", target, strings.Join(texts, "; "))
}

// writeHashed writes the bundle as <stem>_<hash>.js and its map next to it
// under the same hash, and returns the script's file name.
func writeHashed(outDir string, files []api.OutputFile) (string, error) {
	var script, sourceMap *api.OutputFile
	for i := range files {
		if strings.HasSuffix(files[i].Path, ".map") {
			sourceMap = &files[i]
		} else {
			script = &files[i]
		}
	}
	if script == nil {
		return "", errors.New("esbuild produced no script")
	}

	stem := strings.TrimSuffix(filepath.Base(script.Path), ".js")
	name := fmt.Sprintf("%s_%s.js", stem, strings.ReplaceAll(script.Hash, "/", ""))

	body := script.Contents
	if sourceMap != nil {
		body = append(append([]byte{}, body...), "//# sourceMappingURL="+name+".map"...)
		if err := os.WriteFile(filepath.Join(outDir, name+".map"), sourceMap.Contents, 0644); err != nil {
			return "", errors.WithStack(err)
		}
	}
	if err := os.WriteFile(filepath.Join(outDir, name), body, 0644); err != nil {
		return "", errors.WithStack(err)
	}
	return name, nil
}
