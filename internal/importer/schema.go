package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// TranscriptFile is the top-level JSON structure for transcript import.
type TranscriptFile struct {
	Student         StudentImport `json:"student"`
	Taken           []TakenImport `json:"taken"`
	TransferCredits int           `json:"transfer_credits,omitempty"`
}

// StudentImport identifies the transcript's owner in the import file.
type StudentImport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// TakenImport is one enrollment record in a transcript file.
type TakenImport struct {
	Code    string `json:"code"`
	Term    string `json:"term"`
	Grade   string `json:"grade"`
	Credits *int   `json:"credits,omitempty"`
}

// CatalogFile is the top-level JSON structure for a degree program import.
type CatalogFile struct {
	ID           string                      `json:"id,omitempty"`
	Name         string                      `json:"name"`
	TotalCredits int                         `json:"total_credits"`
	Requirements []RequirementImport         `json:"requirements"`
	CourseMeta   map[string]CourseMetaImport `json:"course_meta"`
	Prereqs      map[string][]string         `json:"prereqs,omitempty"`
}

// RequirementImport is one requirement rule in a catalog file. Which fields
// apply depends on Type, mirroring the domain variant set.
type RequirementImport struct {
	ID      string   `json:"id,omitempty"`
	Type    string   `json:"type"`
	Courses []string `json:"courses,omitempty"`
	From    []string `json:"from,omitempty"`
	N       int      `json:"n,omitempty"`
	Area    string   `json:"area,omitempty"`
	Credits int      `json:"credits,omitempty"`
}

// CourseMetaImport is per-course catalog metadata in a catalog file.
type CourseMetaImport struct {
	Credits int    `json:"credits"`
	Area    string `json:"area,omitempty"`
}

// OfferingsFile is the top-level JSON structure for a term's section catalog.
type OfferingsFile struct {
	Term     string                     `json:"term"`
	Sections map[string][]SectionImport `json:"sections"`
}

// SectionImport is one offered section in an offerings file.
type SectionImport struct {
	CRN      string `json:"crn"`
	Days     string `json:"days"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Cap      int    `json:"cap"`
	Enrolled int    `json:"enrolled"`
}

// LoadTranscriptFile reads and parses a transcript JSON file.
func LoadTranscriptFile(path string) (*TranscriptFile, error) {
	var f TranscriptFile
	if err := loadJSON(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadCatalogFile reads and parses a program catalog JSON file.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	var f CatalogFile
	if err := loadJSON(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadOfferingsFile reads and parses a term offerings JSON file.
func LoadOfferingsFile(path string) (*OfferingsFile, error) {
	var f OfferingsFile
	if err := loadJSON(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}
	return nil
}
