// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/schema"
)

// DailyLogRequest binds a calendar day to a plan. On update the date
// comes from the URL path.
type DailyLogRequest struct {
	Date   string  `json:"date"`
	PlanID float64 `json:"plan_id"`
}

type DailyLogInsert struct {
	Date   schema.Date
	PlanID PlanID
}

type DailyLogUpdate = DailyLogInsert

type DailyLogSelect struct {
	Date   schema.Date `json:"date"`
	PlanID PlanID      `json:"plan_id"`
}

var (
	DailyLogInsertCodec = schema.Codec[DailyLogRequest, DailyLogInsert, db.DailyLog]{
		Name:   "DailyLogInsert",
		Decode: DecodeDailyLog,
		Encode: EncodeDailyLog,
	}
	DailyLogUpdateCodec = schema.Codec[DailyLogRequest, DailyLogUpdate, db.DailyLog]{
		Name:   "DailyLogUpdate",
		Decode: DecodeDailyLog,
		Encode: EncodeDailyLog,
	}
)

func DecodeDailyLog(req DailyLogRequest) (DailyLogInsert, error) {
	date, err := schema.ParseDate(req.Date)
	if err != nil {
		return DailyLogInsert{}, schema.At("date", err)
	}
	planID, err := decodeKey[PlanEntity]("plan_id", req.PlanID)
	if err != nil {
		return DailyLogInsert{}, err
	}
	return DailyLogInsert{Date: date, PlanID: planID}, nil
}

func EncodeDailyLog(d DailyLogInsert) (db.DailyLog, error) {
	return db.DailyLog{Date: d.Date, PlanID: d.PlanID.Int64()}, nil
}

func DecodeDailyLogSelect(row db.DailyLog) (DailyLogSelect, error) {
	planID, err := storedKey[PlanEntity]("plan_id", row.PlanID)
	if err != nil {
		return DailyLogSelect{}, err
	}
	return DailyLogSelect{Date: row.Date, PlanID: planID}, nil
}

// FormatDate renders d as an ISO date in UTC, e.g. 2024-01-01.
func FormatDate(d schema.Date) string {
	return d.String()
}
