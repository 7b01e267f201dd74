package seed

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Report holds one ItemResult per manifest item, in manifest order.
type Report struct {
	Founder  []ItemResult
	Gallery  []ItemResult
	Memories []ItemResult
	Events   []ItemResult
}

// All returns every result in seeding order.
func (r *Report) All() []ItemResult {
	all := make([]ItemResult, 0, len(r.Founder)+len(r.Gallery)+len(r.Memories)+len(r.Events))
	all = append(all, r.Founder...)
	all = append(all, r.Gallery...)
	all = append(all, r.Memories...)
	all = append(all, r.Events...)
	return all
}

// Written counts the results whose document was created.
func Written(results []ItemResult) int {
	n := 0
	for _, r := range results {
		if r.Written() {
			n++
		}
	}
	return n
}

// PrintSummary writes the end-of-run summary to w. The counts are items
// attempted, not documents written: a skipped item is still counted.
func PrintSummary(w io.Writer, r *Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Firebase setup completed successfully!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "   - %d Founder message created\n", len(r.Founder))
	fmt.Fprintf(w, "   - %d Gallery images uploaded\n", len(r.Gallery))
	fmt.Fprintf(w, "   - %d Memories uploaded\n", len(r.Memories))
	fmt.Fprintf(w, "   - %d Events created\n", len(r.Events))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Your app should now display all images correctly!")
}

// LogOutcome logs what actually happened, per collection.
func LogOutcome(logger *zap.SugaredLogger, r *Report) {
	var uploaded int64
	for _, result := range r.All() {
		if result.Upload.OK() {
			uploaded += result.Upload.Size
		}
	}

	groups := []struct {
		name    string
		results []ItemResult
	}{
		{CollectionFounderMessages, r.Founder},
		{CollectionGallery, r.Gallery},
		{CollectionMemories, r.Memories},
		{CollectionEvents, r.Events},
	}
	for _, g := range groups {
		written := Written(g.results)
		fields := []interface{}{
			"collection", g.name,
			"attempted", len(g.results),
			"written", written,
			"skipped", len(g.results) - written,
		}
		if written < len(g.results) {
			logger.Warnw("seeding outcome", fields...)
			continue
		}
		logger.Infow("seeding outcome", fields...)
	}

	logger.Infow("images uploaded", "bytes", humanize.Bytes(uint64(uploaded)))
}
