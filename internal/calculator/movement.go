package calculator

import (
	"errors"

	"StockScope/internal/model"
)

// CalculateMovement summarizes the price change from the first to the last bar
// of the provided history.
func CalculateMovement(bars []model.OHLCV) (model.PriceMovement, error) {
	if len(bars) == 0 {
		return model.PriceMovement{}, errors.New("no bars provided")
	}
	start := bars[0].Close
	end := bars[len(bars)-1].Close
	if start == 0 {
		return model.PriceMovement{}, errors.New("starting price is zero")
	}
	return model.PriceMovement{
		StartPrice: start,
		EndPrice:   end,
		ChangePct:  (end - start) / start * 100,
	}, nil
}
