package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/riskibarqy/league-views/internal/domain/match"
	"github.com/riskibarqy/league-views/internal/domain/rawdata"
	"github.com/riskibarqy/league-views/internal/domain/standing"
	"github.com/riskibarqy/league-views/internal/domain/topscorers"
)

const kickoffLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func renderStandings(w io.Writer, items []standing.Standing) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No completed matches yet.")
		return err
	}

	table := newTable(w)
	table.Header("#", "TEAM", "P", "W", "D", "L", "GF", "GA", "GD", "PTS")
	for _, s := range items {
		if err := table.Append(
			strconv.Itoa(s.Position),
			s.Team.Name,
			strconv.Itoa(s.Played),
			strconv.Itoa(s.Won),
			strconv.Itoa(s.Drawn),
			strconv.Itoa(s.Lost),
			strconv.Itoa(s.GoalsFor),
			strconv.Itoa(s.GoalsAgainst),
			fmt.Sprintf("%+d", s.GoalDifference),
			strconv.Itoa(s.Points),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderTopScorers(w io.Writer, items []topscorers.TeamGoals) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No goals recorded yet.")
		return err
	}

	table := newTable(w)
	table.Header("#", "TEAM", "P", "GF", "GA", "AVG")
	for _, g := range items {
		if err := table.Append(
			strconv.Itoa(g.Position),
			g.Team.Name,
			strconv.Itoa(g.Played),
			strconv.Itoa(g.GoalsFor),
			strconv.Itoa(g.GoalsAgainst),
			fmt.Sprintf("%.2f", g.Average()),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderMatches(w io.Writer, items []match.Match) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No matches.")
		return err
	}

	table := newTable(w)
	table.Header("KICKOFF (UTC)", "ROUND", "HOME", "SCORE", "AWAY", "STATUS")
	for _, m := range items {
		if err := table.Append(
			m.KickoffTime().Format(kickoffLayout),
			m.Round,
			m.HomeTeam.Name,
			scoreLine(m),
			m.AwayTeam.Name,
			string(m.Status),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func scoreLine(m match.Match) string {
	if !m.HasHomeResult && !m.HasAwayResult {
		return "-"
	}
	return fmt.Sprintf("%d - %d", m.HomeGoals, m.AwayGoals)
}

func renderArchive(w io.Writer, items []rawdata.Payload) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "Archive is empty.")
		return err
	}

	table := newTable(w)
	table.Header("FETCHED (UTC)", "ENTITY", "KEY", "BYTES", "HASH")
	for _, p := range items {
		hash := p.PayloadHash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		if err := table.Append(
			p.FetchedAt.UTC().Format(time.DateTime),
			p.EntityType,
			p.EntityKey,
			strconv.Itoa(len(p.PayloadJSON)),
			hash,
		); err != nil {
			return err
		}
	}
	return table.Render()
}
