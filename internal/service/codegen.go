package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// CodeLength is the standard voucher code length.
	CodeLength = 20

	// escalatedCodeLength is used for one final draw when every standard
	// attempt collided, so issuance stays live even under a pathologically
	// full code space.
	escalatedCodeLength = 24

	maxCodeAttempts = 10
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=codegen.go -destination=../mocks/codegen.go -package=mocks

type CodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

// CodeGenerator issues globally unique bearer codes.
type CodeGenerator struct {
	codes CodeChecker
}

func NewCodeGenerator(codes CodeChecker) *CodeGenerator {
	return &CodeGenerator{
		codes: codes,
	}
}

// Generate draws uppercase alphanumeric codes until one is unused. Attempts
// are capped; the last resort is a single longer draw.
func (g *CodeGenerator) Generate(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := randomCode(CodeLength)
		if err != nil {
			return "", fmt.Errorf("draw code: %w", err)
		}

		exists, err := g.codes.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code: %w", err)
		}

		if !exists {
			return code, nil
		}
	}

	code, err := randomCode(escalatedCodeLength)
	if err != nil {
		return "", fmt.Errorf("draw escalated code: %w", err)
	}

	exists, err := g.codes.CodeExists(ctx, code)
	if err != nil {
		return "", fmt.Errorf("check escalated code: %w", err)
	}

	if exists {
		return "", fmt.Errorf("exhausted %d attempts generating a unique code", maxCodeAttempts+1)
	}

	return code, nil
}

func randomCode(length int) (string, error) {
	alphabetSize := big.NewInt(int64(len(codeAlphabet)))
	code := make([]byte, length)

	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}

		code[i] = codeAlphabet[n.Int64()]
	}

	return string(code), nil
}
