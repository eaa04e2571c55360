package main

import (
	"chat-uploads/domain"
	"chat-uploads/repositories"
	"chat-uploads/services"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// Inspector for the artifact index: lists records straight from Badger and
// optionally runs the duplicate admin operations (purge, rebuild).
func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	digest := flag.String("digest", "", "Only show artifacts with this content digest")
	duplicatesOnly := flag.Bool("duplicates", false, "Only show duplicate records")
	purge := flag.Bool("purge", false, "Purge duplicate files from storage and retire their records")
	rebuild := flag.Bool("rebuild", false, "Rebuild duplicate flags from existing records")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(!*purge && !*rebuild))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := slog.Default()
	repo := repositories.NewArtifactRepository(db, logger)
	index := services.NewDuplicateIndex(logger, repo)

	if *rebuild {
		found, err := index.RebuildFromExisting()
		if err != nil {
			log.Fatal("Rebuild failed: ", err)
		}
		color.Green.Printf("Rebuild done, %d duplicates flagged\n", found)
	}

	if *purge {
		purged, err := index.PurgeDuplicates()
		if err != nil {
			log.Fatal("Purge failed: ", err)
		}
		color.Green.Printf("Purged %d duplicate files\n", purged)
	}

	artifacts, err := load(repo, *digest, *duplicatesOnly, index)
	if err != nil {
		log.Fatal("Listing failed: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "File", "Type", "Size", "Digest", "Dup", "Original", "Uploaded By", "At"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	duplicates := 0
	for _, a := range artifacts {
		dup := ""
		if a.IsDuplicate {
			dup = "yes"
			duplicates++
		}
		if a.Retired {
			dup = "retired"
		}
		table.Append([]string{
			shorten(a.ID),
			a.OriginalFileName,
			a.ContentType,
			humanize.Bytes(uint64(a.SizeBytes)),
			shorten(a.ContentDigest),
			dup,
			shorten(a.OriginalArtifactID),
			a.UploadedBy,
			a.UploadedAt.Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()

	fmt.Println()
	color.Cyan.Printf("%d artifacts, %d duplicates\n", len(artifacts), duplicates)
}

func load(repo repositories.IArtifactRepository, digest string, duplicatesOnly bool, index *services.DuplicateIndex) ([]domain.Artifact, error) {
	if duplicatesOnly {
		return index.ListDuplicates()
	}
	if digest != "" {
		return repo.ListByDigest(digest)
	}
	return repo.ListAll()
}

func shorten(s string) string {
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
