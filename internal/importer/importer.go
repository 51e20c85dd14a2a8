package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"studytrack-service/internal/models"

	"github.com/xuri/excelize/v2"
)

// Creator is the slice of QuestionService the importer needs.
type Creator interface {
	CreateQuestions(ctx context.Context, questions []models.Question) error
}

// Config maps spreadsheet columns to question fields. Columns are 0-based
// indexes into each row: content, the four option texts in label order,
// correct label, explanation, category, knowledge area, difficulty.
type Config struct {
	FilePath   string
	SheetName  string
	SkipHeader bool
}

func DefaultConfig(path string) Config {
	return Config{
		FilePath:   path,
		SheetName:  "Sheet1",
		SkipHeader: true,
	}
}

// Result summarizes one import run.
type Result struct {
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors,omitempty"`
}

const questionColumns = 10 // content, 4 options, correct, explanation, category, area, difficulty

// ImportQuestions seeds the question catalog from an .xlsx or .csv file.
// Rows that do not form a valid question are skipped and reported, not
// fatal; a single malformed line should not abort a catalog load.
func ImportQuestions(ctx context.Context, creator Creator, config Config) (*Result, error) {
	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(config.FilePath), ".csv") {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var questions []models.Question
	for i, row := range rows {
		if i == 0 && config.SkipHeader {
			continue
		}
		result.TotalProcessed++

		q, err := rowToQuestion(row)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) > 0 {
		if err := creator.CreateQuestions(ctx, questions); err != nil {
			return nil, fmt.Errorf("create questions: %w", err)
		}
	}
	result.Created = len(questions)
	return result, nil
}

func rowToQuestion(row []string) (models.Question, error) {
	if len(row) < questionColumns {
		return models.Question{}, fmt.Errorf("expected %d columns, got %d", questionColumns, len(row))
	}
	content := strings.TrimSpace(row[0])
	if content == "" {
		return models.Question{}, fmt.Errorf("empty question content")
	}

	options := make([]models.Option, len(models.OptionLabels))
	for i, label := range models.OptionLabels {
		text := strings.TrimSpace(row[1+i])
		if text == "" {
			return models.Question{}, fmt.Errorf("empty option %s", label)
		}
		options[i] = models.Option{Label: label, Text: text}
	}

	q := models.Question{
		Content:       content,
		Options:       options,
		CorrectOption: strings.ToUpper(strings.TrimSpace(row[5])),
		Explanation:   strings.TrimSpace(row[6]),
		Category:      strings.TrimSpace(row[7]),
		KnowledgeArea: strings.TrimSpace(row[8]),
		Difficulty:    strings.TrimSpace(row[9]),
	}
	if !q.HasValidCorrectOption() {
		return models.Question{}, fmt.Errorf("correct option %q not in %v", q.CorrectOption, models.OptionLabels)
	}
	return q, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}
