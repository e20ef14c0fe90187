package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/HerbHall/shadetree/internal/backup"
	"github.com/HerbHall/shadetree/internal/server"
)

// runBackup handles `shadetree backup [flags] <destination.db>`. It writes a
// consistent snapshot of the live database without stopping the server.
func runBackup(args []string) {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	dbPath := fs.String("db", "", "SQLite database path (overrides database.dsn)")
	force := fs.Bool("force", false, "overwrite the destination if it exists")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: shadetree backup [flags] <destination.db>\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	dst := fs.Arg(0)

	src, err := resolveDBPath(*configPath, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "backup failed: %v\n", err)
		os.Exit(1)
	}

	if err := backup.Backup(context.Background(), src, dst, *force); err != nil {
		fmt.Fprintf(os.Stderr, "backup failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("backup written to %s\n", dst)
}

// runRestore handles `shadetree restore [flags] <snapshot.db>`. The server
// must be stopped first; restart it afterwards to pick up the restored data.
func runRestore(args []string) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	dbPath := fs.String("db", "", "SQLite database path (overrides database.dsn)")
	force := fs.Bool("force", false, "replace the current database if it exists")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: shadetree restore [flags] <snapshot.db>\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	src := fs.Arg(0)

	dst, err := resolveDBPath(*configPath, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "restore failed: %v\n", err)
		os.Exit(1)
	}

	safety, err := backup.Restore(context.Background(), src, dst, *force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "restore failed: %v\n", err)
		os.Exit(1)
	}
	if safety != "" {
		fmt.Printf("previous database preserved at %s\n", safety)
	}
	fmt.Printf("database restored from %s\n", src)
}

// resolveDBPath returns the database path from the --db flag, falling back
// to the configuration tree.
func resolveDBPath(configPath, dbPath string) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	viperCfg, err := server.LoadConfig(configPath)
	if err != nil {
		return "", err
	}
	dsn := viperCfg.GetString("database.dsn")
	if dsn == "" {
		dsn = "shadetree.db"
	}
	return dsn, nil
}
