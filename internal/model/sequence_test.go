package model_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoicing/internal/model"
)

func TestSequence_StartsAtFirstNumber(t *testing.T) {
	seq := model.NewSequence()
	assert.Equal(t, model.FirstInvoiceNumber, seq.Next())
	assert.Equal(t, model.FirstInvoiceNumber+1, seq.Next())
}

func TestSequence_Reset(t *testing.T) {
	seq := model.NewSequence()
	seq.Next()
	seq.Next()
	seq.Reset()

	assert.Equal(t, model.FirstInvoiceNumber, model.NewInvoiceFrom(seq).Number())
}

func TestSequence_IndependentOfDefault(t *testing.T) {
	model.ResetInvoiceNumber()
	seq := model.NewSequence()

	a := model.NewInvoiceFrom(seq)
	b := model.NewInvoice()

	assert.Equal(t, 1, a.Number())
	assert.Equal(t, 1, b.Number())
}

func TestSequence_ConcurrentNumbersAreConsecutive(t *testing.T) {
	const workers, perWorker = 8, 250
	seq := model.NewSequence()

	var mu sync.Mutex
	var wg sync.WaitGroup
	numbers := make([]int, 0, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, model.NewInvoiceFrom(seq).Number())
			}
			mu.Lock()
			numbers = append(numbers, local...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, numbers, workers*perWorker)
	sort.Ints(numbers)
	for i, n := range numbers {
		assert.Equal(t, model.FirstInvoiceNumber+i, n)
	}
}
