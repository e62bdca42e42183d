// Command ttctl - консольный клиент API редактора расписания.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/timetable-editor/internal/client"
	"github.com/timetable-editor/internal/domain"
	"github.com/timetable-editor/internal/usecase/dto"
)

const usage = `usage: ttctl [-api URL] [-timeout D] <command> [args]

commands:
  stations            list stations in canonical order
  trains [filter]     list saved trains
  show <train>        print a train with its stops
  check <train>       compare train record with station entries
  analyze <train>     direction and company inferred from the number
  templates           list section templates
  delete <train>      delete a train and its station entries
`

func main() {
	apiURL := flag.String("api", envOr("TTCTL_API", "http://localhost:8080"), "API base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(*apiURL, *timeout)
	w := tabwriter.NewWriter(os.Stdout, 5, 3, 3, ' ', 0)
	defer w.Flush()

	if err := run(ctx, c, w, args); err != nil {
		w.Flush()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func arg(args []string, i int) (string, error) {
	if len(args) <= i {
		return "", fmt.Errorf("missing argument for %s", args[0])
	}
	return args[i], nil
}

func run(ctx context.Context, c *client.Client, w *tabwriter.Writer, args []string) error {
	switch args[0] {
	case "stations":
		stations, err := c.Stations(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "# \t id \t name \t name_en")
		for _, st := range stations {
			fmt.Fprintf(w, "%d \t %s \t %s \t %s\n", st.Order, st.ID, st.Name, st.NameEn)
		}

	case "trains":
		filter := ""
		if len(args) > 1 {
			filter = args[1]
		}
		trains, err := c.ListTrains(ctx, filter)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "train \t direction")
		for _, t := range trains {
			fmt.Fprintf(w, "%s \t %s\n", t.ID, t.Direction)
		}

	case "show":
		id, err := arg(args, 1)
		if err != nil {
			return err
		}
		resp, err := c.GetTrain(ctx, id)
		if err != nil {
			return err
		}
		if !resp.Found {
			return fmt.Errorf("train %s not found", strings.ToUpper(id))
		}
		printTrain(w, resp.Train)

	case "check":
		id, err := arg(args, 1)
		if err != nil {
			return err
		}
		report, err := c.Consistency(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "train \t %s\n", report.TrainID)
		fmt.Fprintf(w, "record \t %t\n", report.TrainExists)
		fmt.Fprintf(w, "consistent \t %t\n", report.Consistent)
		fmt.Fprintf(w, "missing \t %s\n", strings.Join(report.MissingEntries, ", "))
		fmt.Fprintf(w, "stale \t %s\n", strings.Join(report.StaleEntries, ", "))
		fmt.Fprintf(w, "duplicate \t %s\n", strings.Join(report.DuplicateEntries, ", "))
		fmt.Fprintf(w, "mismatched \t %s\n", strings.Join(report.MismatchedEntries, ", "))

	case "analyze":
		id, err := arg(args, 1)
		if err != nil {
			return err
		}
		a, err := c.AnalyzeIdentifier(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "train \t %s\n", a.TrainID)
		fmt.Fprintf(w, "direction \t %s\n", a.Label)
		fmt.Fprintf(w, "company \t %s\n", a.CompanyName)

	case "templates":
		templates, err := c.Templates(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "key \t origin \t destination")
		for _, t := range templates {
			fmt.Fprintf(w, "%s \t %s \t %s\n", t.Key, t.Origin, t.Destination)
		}

	case "delete":
		id, err := arg(args, 1)
		if err != nil {
			return err
		}
		sess, err := c.CreateSession(ctx)
		if err != nil {
			return err
		}
		if _, err := c.Load(ctx, sess.ID, dto.LoadRequest{TrainID: id}); err != nil {
			return err
		}
		result, err := c.DeleteTrain(ctx, sess.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "deleted \t %s \t stations updated: %d\n", result.TrainID, result.StationsUpdated)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func printTrain(w *tabwriter.Writer, t *domain.Train) {
	fmt.Fprintf(w, "%s \t %s \t %s \t %s\n", t.TrainNumber, t.Type, t.Direction.Label(), t.OperationInfo)
	if t.Connection != nil {
		fmt.Fprintf(w, "connection \t %s \t %s \t %s\n", t.Connection.Kind, t.Connection.Station, t.Connection.Train)
	}
	fmt.Fprintln(w, "station \t arrival \t departure \t platform \t successor")
	for _, s := range t.Stops {
		platform := ""
		if s.Platform != nil {
			platform = strings.Trim(s.Platform.Arrival+"/"+s.Platform.Departure, "/")
		}
		fmt.Fprintf(w, "%s \t %s \t %s \t %s \t %s\n", s.StationID, s.Arrival, s.Departure, platform, s.SuccessorTrain)
	}
}
