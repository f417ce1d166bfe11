package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// export renders a CSV with write and hands it to the configured sink.
func (a *App) export(ctx context.Context, kind string, write func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		a.println("Error: could not render export:", err)
		return err
	}

	name := fmt.Sprintf("%s-%s.csv", kind, a.now().UTC().Format("20060102-150405"))
	loc, err := a.sink.Put(ctx, name, buf.Bytes())
	if err != nil {
		a.log.Warn(ctx, "export failed", "name", name, "error", err)
		a.println("Error: export failed:", err)
		return err
	}

	a.log.Info(ctx, "export written", "location", loc, "bytes", buf.Len())
	a.println("Exported to", loc)
	return nil
}
