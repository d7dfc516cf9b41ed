package api

import (
	"context"

	"github.com/mmynk/tripsplit/internal/currency"
)

func (s *Server) listCurrencies(ctx context.Context, _ *ListCurrenciesRequest) (*ListCurrenciesResponse, error) {
	return &ListCurrenciesResponse{Currencies: s.Converter.Currencies(ctx)}, nil
}

func (s *Server) convert(ctx context.Context, req *ConvertRequest) (*ConvertResponse, error) {
	conversion, err := s.Converter.Convert(ctx, req.Amount, req.From, req.To)
	if err != nil {
		return nil, err
	}
	return &ConvertResponse{
		Conversion: conversion,
		Display:    currency.FormatCode(conversion.Result, conversion.ToCurrency),
	}, nil
}

func (s *Server) getHistory(ctx context.Context, _ *GetHistoryRequest) (*GetHistoryResponse, error) {
	history, err := s.Converter.History(ctx)
	if err != nil {
		return nil, err
	}
	return &GetHistoryResponse{Conversions: history}, nil
}

func (s *Server) clearHistory(ctx context.Context, _ *ClearHistoryRequest) (*ClearHistoryResponse, error) {
	if err := s.Converter.ClearHistory(ctx); err != nil {
		return nil, err
	}
	return &ClearHistoryResponse{}, nil
}
