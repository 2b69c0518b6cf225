package main

import (
	"context"
	"os"
	"time"

	"github.com/ragtimer/ragtimer/model"
)

func loadModel(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return model.Parse(f)
}

func runContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
}
