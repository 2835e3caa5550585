package excel

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/xuri/excelize/v2"
)

// DateLayout — ISO-8601 с миллисекундами в UTC, как в колонке Date.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Header — фиксированные колонки журнала заказов.
var Header = []string{"Order ID", "Date", "Customer Name", "Email", "Total", "Status"}

var columnWidths = []float64{38, 26, 24, 30, 14, 12}

// Ledger дописывает по одной строке на заказ в xlsx-файл.
// Каждая запись — эксклюзивный цикл open-read-modify-write; файл заменяется атомарно через rename.
type Ledger struct {
	path   string
	sheet  string
	mu     sync.Mutex
	logger logger.Logger
}

func NewLedger(path string, sheet string, logger logger.Logger) *Ledger {
	return &Ledger{
		path:   path,
		sheet:  sheet,
		logger: logger,
	}
}

func (l *Ledger) Path() string {
	return l.path
}

// Init создаёт файл с заголовком, если его нет.
func (l *Ledger) Init() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := os.Stat(l.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	f, err := l.newWorkbook()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer f.Close()

	if err := l.write(f); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	l.logger.Infof("created order ledger %s", l.path)
	return nil
}

// Append дописывает строку заказа: Order ID, Date, Customer Name, Email, Total, Status.
func (l *Ledger) Append(ctx context.Context, order *domain.Order) error {
	const op = "Ledger.Append"

	if err := ctx.Err(); err != nil {
		return e.Wrap(op, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := l.open()
	if err != nil {
		return e.Wrap(op, err)
	}
	defer f.Close()

	rows, err := f.GetRows(l.sheet)
	if err != nil {
		return e.Wrap(op, err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return e.Wrap(op, err)
	}

	row := []any{
		order.ID,
		order.CreatedAt.UTC().Format(DateLayout),
		order.Customer.FullName,
		order.Customer.Email,
		order.Total,
		string(order.Status),
	}
	if err := f.SetSheetRow(l.sheet, cell, &row); err != nil {
		return e.Wrap(op, err)
	}

	if err := l.write(f); err != nil {
		return e.Wrap(op, err)
	}

	l.logger.Debugf("%s: order %s saved to %s", op, order.ID, l.path)
	return nil
}

// Snapshot возвращает текущее содержимое файла журнала.
func (l *Ledger) Snapshot() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

// open открывает существующий файл или создаёт книгу с заголовком.
// Если в файле нет нужного листа, лист создаётся.
func (l *Ledger) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return l.newWorkbook()
	}
	if err != nil {
		return nil, err
	}

	idx, err := f.GetSheetIndex(l.sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	if idx == -1 {
		if err := l.addSheet(f); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func (l *Ledger) newWorkbook() (*excelize.File, error) {
	const defaultSheet = "Sheet1"

	f := excelize.NewFile()
	if err := l.addSheet(f); err != nil {
		f.Close()
		return nil, err
	}

	if l.sheet != defaultSheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func (l *Ledger) addSheet(f *excelize.File) error {
	idx, err := f.NewSheet(l.sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(l.sheet, "A1", &header); err != nil {
		return err
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(l.sheet, col, col, width); err != nil {
			return err
		}
	}

	return nil
}

// write сохраняет книгу во временный файл рядом с журналом и атомарно подменяет его.
func (l *Ledger) write(f *excelize.File) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%d.tmp", filepath.Base(l.path), time.Now().UnixNano()))
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmp, l.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
