package main

import (
	"errors"
	"fmt"
	"strconv"
)

// ── Errores como valores ─────────────────────────────────────────────────────
// No hay excepciones: una función que puede fallar devuelve un error como
// último resultado y el que llama decide qué hacer.

// InputError lleva el contexto de la falla y expone la causa con Unwrap.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// parseGrade parses and validates a grade typed by a user.
func parseGrade(s string) (string, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", &InputError{Field: "grade", Value: s, Err: err}
	}
	letter, err := letterGrade(n)
	if err != nil {
		return "", &InputError{Field: "grade", Value: s, Err: err}
	}
	return letter, nil
}

func demoErrors() {
	var errs []error
	for _, in := range []string{"75", "abc", "140"} {
		letter, err := parseGrade(in)
		if err != nil {
			errs = append(errs, err)
			fmt.Println("  error:", err)
			continue
		}
		fmt.Printf("  %s → %s\n", in, letter)
	}

	// errors.Is recorre la cadena de Unwrap.
	joined := errors.Join(errs...)
	fmt.Println("  any ErrBadGrade:", errors.Is(joined, ErrBadGrade))

	// errors.As extrae el tipo concreto.
	var numErr *strconv.NumError
	if errors.As(joined, &numErr) {
		fmt.Printf("  NumError: func=%s num=%q\n", numErr.Func, numErr.Num)
	}
}

// ── panic vs error ───────────────────────────────────────────────────────────
// panic es para errores de programación; recover en el borde de la API lo
// convierte en un error común.

func safeIndex(v []string, i int) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("safeIndex: %v", r)
		}
	}()
	return v[i], nil
}

func demoRecover() {
	if s, err := safeIndex(scores, 4); err == nil {
		fmt.Println("  scores[4] =", s)
	}
	if _, err := safeIndex(scores, 10); err != nil {
		fmt.Println("  recovered:", err)
	}
}

// run fails on purpose so that main exits with a nonzero status.
func run() error {
	return errors.New("an error has occurred! (not really)")
}
