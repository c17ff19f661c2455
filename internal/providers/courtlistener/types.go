package courtlistener

import (
	"encoding/json"
	"strings"
)

type searchResponse struct {
	Count   int            `json:"count"`
	Results []searchResult `json:"results"`
}

type searchResult struct {
	CaseName     string        `json:"caseName"`
	CaseNameAlt  string        `json:"case_name"`
	Citation     citationField `json:"citation"`
	DateFiled    string        `json:"dateFiled"`
	DateFiledAlt string        `json:"date_filed"`
	Court        string        `json:"court"`
	CourtID      string        `json:"court_id"`
	Snippet      string        `json:"snippet"`
	AbsoluteURL  string        `json:"absolute_url"`
	ClusterID    flexID        `json:"cluster_id"`
	DocketID     flexID        `json:"docket_id"`
	Attorney     string        `json:"attorney"`
}

type clusterResponse struct {
	SubOpinions []string `json:"sub_opinions"`
}

type opinionResponse struct {
	HTMLWithCitations string `json:"html_with_citations"`
	PlainText         string `json:"plain_text"`
	HTML              string `json:"html"`
}

type partiesResponse struct {
	Results []partyResult `json:"results"`
}

type partyResult struct {
	Name       string          `json:"name"`
	PartyTypes []partyType     `json:"party_types"`
	Attorneys  []partyAttorney `json:"attorneys"`
}

type partyType struct {
	Name string `json:"name"`
}

type partyAttorney struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// citationField tolerates the upstream citation being a single string, a
// list of strings, or absent.
type citationField []string

func (c *citationField) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*c = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*c = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*c = nil
		return nil
	}
	*c = []string{single}
	return nil
}

// First returns the first citation or an empty string.
func (c citationField) First() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// flexID tolerates upstream identifiers being numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) String() string { return string(f) }
