package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/filekeeper/internal/client/services"
)

var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

func parseRefID(s string) (*int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ref_id must be an integer: %q", s)
	}
	return &id, nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.service.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("upload <module> <file>...")
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	uploaded, err := a.service.Upload(ctx, args[0], "", args[1:])
	for _, u := range uploaded {
		fmt.Fprintf(a.out, "uploaded %s -> %s\n", u.LocalPath, u.Key)
	}
	return err
}

func (a *App) Pending(ctx context.Context) error {
	rows, err := a.service.Pending(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "no pending uploads")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tMODULE\tSTATUS\tSIZE\tLOCAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.Key, r.Module, r.Status, r.FileSize, r.LocalPath)
	}
	return tw.Flush()
}

func (a *App) Commit(ctx context.Context, args []string) error {
	opts := services.CommitOptions{Relocate: true}

	var positional []string
	for _, arg := range args {
		if arg == "--keep" {
			opts.Relocate = false
			continue
		}
		positional = append(positional, arg)
	}
	if len(positional) < 1 || len(positional) > 3 {
		return usage("commit <module> [ref_type] [ref_id] [--keep]")
	}
	opts.Module = positional[0]
	if len(positional) >= 2 {
		opts.RefType = positional[1]
	}
	if len(positional) == 3 {
		id, err := parseRefID(positional[2])
		if err != nil {
			return err
		}
		opts.RefID = id
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.service.Commit(ctx, opts)
	if resp != nil {
		for _, f := range resp.GetFiles() {
			fmt.Fprintf(a.out, "#%d %s %s\n", f.GetId(), f.GetFileId(), f.GetFilePath())
		}
		if len(resp.GetPendingRelocation()) > 0 {
			fmt.Fprintf(a.out, "%s; still in TEMPS: %v\n", resp.GetMessage(), resp.GetPendingRelocation())
		}
	}
	return err
}

func (a *App) List(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("list <ref_type> [ref_id]")
	}
	var refID *int64
	if len(args) == 2 {
		id, err := parseRefID(args[1])
		if err != nil {
			return err
		}
		refID = id
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	rows, err := a.service.List(ctx, args[0], refID)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILE_ID\tNAME\tSIZE\tPATH")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", r.GetId(), r.GetFileId(), r.GetOriginalFileName(), r.GetFileSize(), r.GetFilePath())
	}
	return tw.Flush()
}

func (a *App) Download(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usage("download <file_id> <key> <dest>")
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	n, err := a.service.Download(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved %d bytes to %s\n", n, args[2])
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("delete <id> <file_path>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id must be an integer: %q", args[0])
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.service.Delete(ctx, id, args[1]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "deleted")
	return nil
}

func (a *App) Discard(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("discard <key>")
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.service.Discard(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "discarded")
	return nil
}
