package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type SearchRecord struct {
	Problem    string
	PlanLength int
	Cost       float64
	Reached    bool
	SearchMetric
}

// AgentConfig describes one runner set-up of a variant comparison.
type AgentConfig struct {
	ID         int
	Variant    string
	Depth      int
	Evaluation string
	Ghosts     int
	Attack     float64 // Probability a ghost heads for the runner, 0 for random ghosts
}

type GameRecord struct {
	Trial int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	runID   string
	baseDir string
}

// NewWriter creates <root>/<name>/<run id> and writes every table there.
func NewWriter(root, name string) (*Writer, error) {
	runID := uuid.NewString()
	baseDir := filepath.Join(root, name, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		runID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) RunID() string   { return w.runID }
func (w *Writer) BaseDir() string { return w.baseDir }

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "variant", "depth", "evaluation", "ghosts", "attack"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Variant,
			strconv.Itoa(config.Depth),
			config.Evaluation,
			strconv.Itoa(config.Ghosts),
			strconv.FormatFloat(config.Attack, 'f', -1, 64),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"problem", "discipline", "plan_length", "cost", "reached", "expanded", "generated", "evaluations", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Problem,
			record.Label,
			strconv.Itoa(record.PlanLength),
			strconv.FormatFloat(record.Cost, 'f', -1, 64),
			strconv.FormatBool(record.Reached),
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.Generated),
			strconv.Itoa(record.Evaluations),
			record.Duration.String(),
		})
	}
	return w.write("search_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"trial", "agent", "id", "variant", "seed", "won", "score", "total_moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Trial),
			strconv.Itoa(record.Agent),
			record.ID,
			record.Variant,
			strconv.FormatUint(record.Seed, 10),
			strconv.FormatBool(record.Won),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "agent", "variant", "expanded", "evaluations", "cutoffs", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Agent),
			record.Label,
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.Cutoffs),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
