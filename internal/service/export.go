// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/olegiv/aisite/internal/model"
	"github.com/olegiv/aisite/internal/store"
)

// InquirySheet is the worksheet name of the inquiry export.
const InquirySheet = "Inquiries"

// InquiryExportHeader is the first row of the inquiry export.
var InquiryExportHeader = []string{
	"ID", "Name", "Email", "Phone", "Company", "Country", "Job Title",
	"Message", "Attachment", "Read", "Responded", "Response Notes", "Received",
}

var inquiryColumnWidths = []float64{8, 24, 30, 16, 24, 12, 16, 60, 30, 8, 10, 40, 20}

// ExportInquiries writes every contact inquiry to an XLSX workbook.
func (s *AdminService) ExportInquiries(ctx context.Context, actor Actor) ([]byte, error) {
	if !model.CanEdit(actor.Role, model.EntityInquiry) {
		return nil, model.ErrUnauthorized
	}
	inquiries, err := s.queries.ListInquiries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}
	return buildInquiryWorkbook(inquiries)
}

func buildInquiryWorkbook(inquiries []store.ContactInquiry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(InquirySheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	if err := writeRow(f, 1, toCells(InquiryExportHeader)); err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(InquiryExportHeader), 1)
	if err := f.SetCellStyle(InquirySheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("setting header style: %w", err)
	}
	for i, w := range inquiryColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(InquirySheet, col, col, w); err != nil {
			return nil, fmt.Errorf("setting column width: %w", err)
		}
	}

	for i, inq := range inquiries {
		row := []any{
			inq.ID, inq.Name, inq.Email, inq.Phone, inq.Company,
			model.ChoiceLabel(model.Countries, inq.Country),
			model.ChoiceLabel(model.JobTitles, inq.JobTitle),
			inq.Message, inq.Attachment, yesNo(inq.IsRead), yesNo(inq.IsResponded),
			inq.ResponseNotes, inq.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("converting coordinates: %w", err)
	}
	if err := f.SetSheetRow(InquirySheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

func toCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
