package domain

import "time"

// CellMailedThisWeek holds the weekly counters of one strategy cell. CellNo
// refers to a StrategyCell of the owning campaign.
type CellMailedThisWeek struct {
	CellNo                  string
	QuantityMailedThisWeek  int64
	ResponsesThisWeek       int64
	ConversionsThisWeek     int64
	ConversionValueThisWeek float64
}

func (c CellMailedThisWeek) validate() error {
	return nonNegative(
		amount{"quantity_mailed_this_week", float64(c.QuantityMailedThisWeek)},
		amount{"responses_this_week", float64(c.ResponsesThisWeek)},
		amount{"conversions_this_week", float64(c.ConversionsThisWeek)},
		amount{"conversion_value_this_week", c.ConversionValueThisWeek},
	)
}

func (c CellMailedThisWeek) document() Document {
	return Document{
		"cell_no":                    c.CellNo,
		"quantity_mailed_this_week":  c.QuantityMailedThisWeek,
		"responses_this_week":        c.ResponsesThisWeek,
		"conversions_this_week":      c.ConversionsThisWeek,
		"conversion_value_this_week": c.ConversionValueThisWeek,
	}
}

func readCellMailedThisWeek(r *fieldReader) CellMailedThisWeek {
	return CellMailedThisWeek{
		CellNo:                  r.str("cell_no"),
		QuantityMailedThisWeek:  r.integer("quantity_mailed_this_week"),
		ResponsesThisWeek:       r.integer("responses_this_week"),
		ConversionsThisWeek:     r.integer("conversions_this_week"),
		ConversionValueThisWeek: r.number("conversion_value_this_week"),
	}
}

// WeeklyMailDrop is one mailing event of a campaign.
type WeeklyMailDrop struct {
	MailDropID              string
	MailingWeekStartDate    time.Time
	PlannedSendDate         time.Time
	ActualSendDate          *time.Time
	TotalPiecesSentThisWeek int64
	CellsMailedThisWeek     []CellMailedThisWeek
}

// Validate checks that the per-cell quantities add up to the drop total.
// Drops without cell entries are accepted as they were stored by older
// uploads.
func (d WeeklyMailDrop) Validate() error {
	if d.MailDropID == "" {
		return invalid("mail_drop_id", "must not be empty")
	}
	if d.TotalPiecesSentThisWeek < 0 {
		return invalid("total_pieces_sent_this_week", "must not be negative, got %d", d.TotalPiecesSentThisWeek)
	}
	if len(d.CellsMailedThisWeek) == 0 {
		return nil
	}
	var sum int64
	for _, c := range d.CellsMailedThisWeek {
		if err := c.validate(); err != nil {
			return err
		}
		sum += c.QuantityMailedThisWeek
	}
	if sum != d.TotalPiecesSentThisWeek {
		return invalid("cells_mailed_this_week", "quantities sum to %d, drop %s reports %d pieces",
			sum, d.MailDropID, d.TotalPiecesSentThisWeek)
	}
	return nil
}

func (d WeeklyMailDrop) document() Document {
	cells := make([]any, 0, len(d.CellsMailedThisWeek))
	for _, c := range d.CellsMailedThisWeek {
		cells = append(cells, c.document())
	}
	var actual any
	if d.ActualSendDate != nil {
		actual = formatDate(*d.ActualSendDate)
	}
	return Document{
		"mail_drop_id":                d.MailDropID,
		"mailing_week_start_date":     formatDate(d.MailingWeekStartDate),
		"planned_send_date":           formatDate(d.PlannedSendDate),
		"actual_send_date":            actual,
		"total_pieces_sent_this_week": d.TotalPiecesSentThisWeek,
		"cells_mailed_this_week":      cells,
	}
}

func readWeeklyMailDrop(r *fieldReader) WeeklyMailDrop {
	d := WeeklyMailDrop{
		MailDropID:              r.str("mail_drop_id"),
		MailingWeekStartDate:    r.date("mailing_week_start_date"),
		PlannedSendDate:         r.date("planned_send_date"),
		ActualSendDate:          r.optDate("actual_send_date"),
		TotalPiecesSentThisWeek: r.integer("total_pieces_sent_this_week"),
	}
	for _, c := range r.array("cells_mailed_this_week") {
		d.CellsMailedThisWeek = append(d.CellsMailedThisWeek, readCellMailedThisWeek(c))
	}
	return d
}
