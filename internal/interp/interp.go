package interp

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/oarkflow/errors"
	"github.com/oarkflow/log"

	"github.com/Nishant98750/rcv-lang/internal/i18n"
	"github.com/Nishant98750/rcv-lang/internal/lexer"
	"github.com/Nishant98750/rcv-lang/internal/parser"
)

// Fault kinds a runtime error can be matched against with errors.Is.
var (
	ErrUndefinedVariable  = errors.New("undefined variable")
	ErrUnsupportedLiteral = errors.New("unsupported literal")
	ErrUnknownOperator    = errors.New("unknown operator")
)

// RuntimeError is a fault raised while executing a statement. It keeps
// the token the fault is tied to and unwraps to one of the kinds above.
type RuntimeError struct {
	Token lexer.Token
	msg   string
	kind  error
}

func (e *RuntimeError) Error() string { return e.msg }
func (e *RuntimeError) Unwrap() error { return e.kind }

func runtimeError(tok lexer.Token, kind error, msg string) *RuntimeError {
	return &RuntimeError{Token: tok, kind: kind, msg: msg}
}

// Interpreter walks a parsed program and executes it against a single
// flat environment. All values are float64; booleans are 0/1.
type Interpreter struct {
	env    *Environment
	out    io.Writer
	logger *log.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput redirects print output.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithLogger replaces the interpreter's logger.
func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) { in.logger = logger }
}

// New creates an interpreter with an empty environment.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		env:    NewEnvironment(),
		out:    os.Stdout,
		logger: &log.DefaultLogger,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Env exposes the environment for inspection.
func (in *Interpreter) Env() *Environment {
	return in.env
}

// Interpret executes the top-level statements in order. The first
// runtime fault aborts the remaining statements of this call and is
// returned; the interpreter stays usable for a fresh call.
func (in *Interpreter) Interpret(program *parser.Program) error {
	for _, stmt := range program.Statements {
		if err := in.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execStatement(stmt parser.Statement) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.evalExpression(s.Expression)
		return err
	case *parser.LetStmt:
		// a missing initializer defaults to 0
		value := 0.0
		if s.Value != nil {
			var err error
			value, err = in.evalExpression(s.Value)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Literal, value)
		return nil
	case *parser.BlockStmt:
		// blocks do not open a new scope
		for _, inner := range s.Statements {
			if err := in.execStatement(inner); err != nil {
				return err
			}
		}
		return nil
	case *parser.IfStmt:
		condition, err := in.evalExpression(s.Condition)
		if err != nil {
			return err
		}
		if condition != 0 {
			return in.execStatement(s.Consequence)
		}
		if s.Alternative != nil {
			return in.execStatement(s.Alternative)
		}
		return nil
	case *parser.PrintStmt:
		value, err := in.evalExpression(s.Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, formatNumber(value))
		return nil
	case *parser.FuncStmt:
		// declarations are parsed but there is no call mechanism
		in.logger.Debug().Str("name", s.Name.Literal).Msg("skipping function declaration")
		return nil
	case *parser.ReturnStmt:
		in.logger.Debug().Int("line", s.Token.Line).Msg("skipping return outside of a call")
		return nil
	default:
		return nil
	}
}

func (in *Interpreter) evalExpression(expr parser.Expression) (float64, error) {
	switch e := expr.(type) {
	case *parser.IntegerLiteral:
		return parseNumber(e.Token)
	case *parser.FloatLiteral:
		return parseNumber(e.Token)
	case *parser.BoolLiteral:
		if e.Value {
			return 1, nil
		}
		return 0, nil
	case *parser.NilLiteral:
		return 0, nil
	case *parser.StringLiteral:
		return 0, runtimeError(e.Token, ErrUnsupportedLiteral,
			i18n.T(i18n.ErrUnsupportedLiteral, e.Token.Literal))
	case *parser.CharLiteral:
		return 0, runtimeError(e.Token, ErrUnsupportedLiteral,
			i18n.T(i18n.ErrUnsupportedLiteral, e.Token.Literal))
	case *parser.Identifier:
		value, ok := in.env.Get(e.Value)
		if !ok {
			return 0, runtimeError(e.Token, ErrUndefinedVariable,
				i18n.T(i18n.ErrUndefinedVariable, e.Value))
		}
		return value, nil
	case *parser.AssignExpr:
		value, err := in.evalExpression(e.Value)
		if err != nil {
			return 0, err
		}
		if !in.env.Assign(e.Name.Literal, value) {
			return 0, runtimeError(e.Name, ErrUndefinedVariable,
				i18n.T(i18n.ErrUndefinedVariable, e.Name.Literal))
		}
		return value, nil
	case *parser.UnaryExpr:
		operand, err := in.evalExpression(e.Operand)
		if err != nil {
			return 0, err
		}
		return -operand, nil
	case *parser.BinaryExpr:
		return in.evalBinary(e)
	default:
		return 0, nil
	}
}

// evalBinary evaluates both sides eagerly, left before right. Division
// follows IEEE float semantics; dividing by zero yields Inf or NaN
// rather than a fault.
func (in *Interpreter) evalBinary(e *parser.BinaryExpr) (float64, error) {
	left, err := in.evalExpression(e.Left)
	if err != nil {
		return 0, err
	}
	right, err := in.evalExpression(e.Right)
	if err != nil {
		return 0, err
	}
	switch e.Operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		return left / right, nil
	case "%":
		return math.Mod(left, right), nil
	case "==":
		return boolToNumber(left == right), nil
	case "!=":
		return boolToNumber(left != right), nil
	case "<":
		return boolToNumber(left < right), nil
	case "<=":
		return boolToNumber(left <= right), nil
	case ">":
		return boolToNumber(left > right), nil
	case ">=":
		return boolToNumber(left >= right), nil
	default:
		return 0, runtimeError(e.Token, ErrUnknownOperator,
			i18n.T(i18n.ErrUnknownOperator, e.Operator))
	}
}

func parseNumber(tok lexer.Token) (float64, error) {
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return 0, runtimeError(tok, ErrUnsupportedLiteral,
			i18n.T(i18n.ErrUnsupportedLiteral, tok.Literal))
	}
	return value, nil
}

func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// formatNumber renders a value the shortest way that round-trips,
// so whole numbers print without a fractional part.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
