// Package site generates the three-file static website scaffold the
// assistant builds on request. The scaffold is overwritten on every
// invocation; it is a starting template, not managed content.
package site

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// DefaultDir is the stock scaffold output directory.
const DefaultDir = "output/website"

// Builder writes website scaffolds into a fixed output directory.
type Builder struct {
	dir string
}

// NewBuilder creates a scaffold builder. An empty dir selects DefaultDir.
func NewBuilder(dir string) *Builder {
	if dir == "" {
		dir = DefaultDir
	}
	return &Builder{dir: dir}
}

// Dir returns the scaffold output directory.
func (b *Builder) Dir() string { return b.dir }

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
  <meta charset='utf-8'>
  <meta name='viewport' content='width=device-width,initial-scale=1'>
  <title>My Nova Website</title>
  <link rel='stylesheet' href='styles.css'>
</head>
<body>
  <header><h1>My Nova Website</h1></header>
  <main>
    <p>{{.Description}}</p>
    <section id='contact'>
      <h2>Contact</h2>
      <form>
        <input placeholder='Your name' required><br>
        <input placeholder='Your email' required><br>
        <textarea placeholder='Message'></textarea><br>
        <button type='submit'>Send</button>
      </form>
    </section>
  </main>
  <footer>Generated by Nova</footer>
  <script src='app.js'></script>
</body>
</html>
`))

const stylesCSS = `body { font-family: Arial, sans-serif; margin: 20px; padding:0; background:#f9f9f9; color:#333 }
header { background:#005f73; color:white; padding: 10px 20px; border-radius:6px }
main { margin-top:20px }
#contact { background:white; padding:15px; border-radius:6px; box-shadow:0 0 6px rgba(0,0,0,0.06) }
form input, form textarea { width:100%; padding:8px; margin:6px 0 }
`

const appJS = `console.log('Nova site loaded');
`

// Build writes index.html, styles.css and app.js, overwriting any previous
// scaffold. The description is interpolated into the page body.
func (b *Builder) Build(description string) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("site: create dir: %w", err)
	}

	f, err := os.Create(filepath.Join(b.dir, "index.html"))
	if err != nil {
		return fmt.Errorf("site: write index.html: %w", err)
	}
	if err := indexTmpl.Execute(f, struct{ Description string }{description}); err != nil {
		f.Close()
		return fmt.Errorf("site: render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("site: write index.html: %w", err)
	}

	if err := os.WriteFile(filepath.Join(b.dir, "styles.css"), []byte(stylesCSS), 0o644); err != nil {
		return fmt.Errorf("site: write styles.css: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.dir, "app.js"), []byte(appJS), 0o644); err != nil {
		return fmt.Errorf("site: write app.js: %w", err)
	}
	return nil
}
