// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"github.com/danielhkuo/nutrilog/db"
	"github.com/danielhkuo/nutrilog/schema"
)

// PlanRequest is a daily calorie target and the share (percent) of each
// macro-nutrient.
type PlanRequest struct {
	Calories           float64 `json:"calories"`
	FatsRatio          float64 `json:"fats_ratio"`
	CarbohydratesRatio float64 `json:"carbohydrates_ratio"`
	ProteinsRatio      float64 `json:"proteins_ratio"`
}

type PlanUpdateRequest struct {
	ID string `json:"-"`
	PlanRequest
}

type PlanInsert struct {
	Calories           schema.Quantity
	FatsRatio          schema.Quantity
	CarbohydratesRatio schema.Quantity
	ProteinsRatio      schema.Quantity
}

type PlanUpdate struct {
	ID PlanID
	PlanInsert
}

type PlanRemove struct {
	ID PlanID
}

// PlanSelectDaily is the plan a daily log follows.
type PlanSelectDaily struct {
	ID                 PlanID          `json:"id"`
	Calories           schema.Quantity `json:"calories"`
	FatsRatio          schema.Quantity `json:"fats_ratio"`
	CarbohydratesRatio schema.Quantity `json:"carbohydrates_ratio"`
	ProteinsRatio      schema.Quantity `json:"proteins_ratio"`
	IsCurrent          bool            `json:"is_current"`
}

// PlanSelectWithLogs adds how many daily logs use the plan.
type PlanSelectWithLogs struct {
	PlanSelectDaily
	Logs int64 `json:"logs"`
}

var (
	PlanInsertCodec = schema.Codec[PlanRequest, PlanInsert, db.Plan]{
		Name:   "PlanInsert",
		Decode: DecodePlanInsert,
		Encode: EncodePlanInsert,
	}
	PlanUpdateCodec = schema.Codec[PlanUpdateRequest, PlanUpdate, db.Plan]{
		Name:   "PlanUpdate",
		Decode: DecodePlanUpdate,
		Encode: EncodePlanUpdate,
	}
	PlanRemoveCodec = schema.Codec[string, PlanRemove, db.Plan]{
		Name:   "PlanRemove",
		Decode: DecodePlanRemove,
		Encode: func(p PlanRemove) (db.Plan, error) {
			return db.Plan{ID: p.ID.Int64()}, nil
		},
	}
)

// DecodePlanInsert validates each field, then the ratio group as a unit.
func DecodePlanInsert(req PlanRequest) (PlanInsert, error) {
	var p PlanInsert
	var c collector
	c.quantity(&p.Calories, positiveQuantity, "calories", req.Calories)
	c.quantity(&p.FatsRatio, quantity, "fats_ratio", req.FatsRatio)
	c.quantity(&p.CarbohydratesRatio, quantity, "carbohydrates_ratio", req.CarbohydratesRatio)
	c.quantity(&p.ProteinsRatio, quantity, "proteins_ratio", req.ProteinsRatio)
	if c.err != nil {
		return PlanInsert{}, c.err
	}
	if err := schema.MacroRatio(p.FatsRatio, p.CarbohydratesRatio, p.ProteinsRatio); err != nil {
		return PlanInsert{}, err
	}
	return p, nil
}

func EncodePlanInsert(p PlanInsert) (db.Plan, error) {
	var row db.Plan
	var c collector
	c.raw(&row.Calories, "calories", p.Calories)
	c.raw(&row.FatsRatio, "fats_ratio", p.FatsRatio)
	c.raw(&row.CarbohydratesRatio, "carbohydrates_ratio", p.CarbohydratesRatio)
	c.raw(&row.ProteinsRatio, "proteins_ratio", p.ProteinsRatio)
	if c.err != nil {
		return db.Plan{}, c.err
	}
	return row, nil
}

func DecodePlanUpdate(req PlanUpdateRequest) (PlanUpdate, error) {
	id, err := parseKey[PlanEntity](req.ID)
	if err != nil {
		return PlanUpdate{}, err
	}
	p, err := DecodePlanInsert(req.PlanRequest)
	if err != nil {
		return PlanUpdate{}, err
	}
	return PlanUpdate{ID: id, PlanInsert: p}, nil
}

func EncodePlanUpdate(p PlanUpdate) (db.Plan, error) {
	row, err := EncodePlanInsert(p.PlanInsert)
	if err != nil {
		return db.Plan{}, err
	}
	row.ID = p.ID.Int64()
	return row, nil
}

func DecodePlanRemove(id string) (PlanRemove, error) {
	key, err := parseKey[PlanEntity](id)
	if err != nil {
		return PlanRemove{}, err
	}
	return PlanRemove{ID: key}, nil
}

func DecodePlanSelectDaily(row db.Plan) (PlanSelectDaily, error) {
	id, err := storedKey[PlanEntity]("id", row.ID)
	if err != nil {
		return PlanSelectDaily{}, err
	}
	p := PlanSelectDaily{ID: id, IsCurrent: row.IsCurrent}
	var c collector
	c.quantity(&p.Calories, decode, "calories", row.Calories)
	c.quantity(&p.FatsRatio, decode, "fats_ratio", row.FatsRatio)
	c.quantity(&p.CarbohydratesRatio, decode, "carbohydrates_ratio", row.CarbohydratesRatio)
	c.quantity(&p.ProteinsRatio, decode, "proteins_ratio", row.ProteinsRatio)
	if c.err != nil {
		return PlanSelectDaily{}, c.err
	}
	return p, nil
}

func DecodePlanSelectWithLogs(row db.PlanWithLogs) (PlanSelectWithLogs, error) {
	p, err := DecodePlanSelectDaily(row.Plan)
	if err != nil {
		return PlanSelectWithLogs{}, err
	}
	if row.Logs < 0 {
		return PlanSelectWithLogs{}, &schema.ValidationError{Path: []string{"logs"}, Message: "Expected a non-negative number"}
	}
	return PlanSelectWithLogs{PlanSelectDaily: p, Logs: row.Logs}, nil
}

func DecodePlans(rows []db.PlanWithLogs) ([]PlanSelectWithLogs, error) {
	out := make([]PlanSelectWithLogs, 0, len(rows))
	for _, row := range rows {
		p, err := DecodePlanSelectWithLogs(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
