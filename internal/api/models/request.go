package models

// PredictRequest is the body of POST /predict.
type PredictRequest struct {
	State string `json:"state" binding:"required"`
}
