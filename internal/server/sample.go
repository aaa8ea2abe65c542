package server

import "github.com/KaramelBytes/tabled/internal/dataset"

// SampleDataset returns the small demo dataset the service seeds at
// startup when asked, so the UI has something to browse immediately.
func SampleDataset() *dataset.Dataset {
	columns := []string{"id", "name", "age", "city", "salary"}
	people := []struct {
		id     float64
		name   string
		age    float64
		city   string
		salary float64
	}{
		{1, "Alice", 30, "New York", 75000},
		{2, "Bob", 25, "San Francisco", 85000},
		{3, "Charlie", 35, "Los Angeles", 65000},
		{4, "Diana", 28, "New York", 90000},
		{5, "Eve", 32, "Chicago", 72000},
	}
	rows := make([]dataset.Row, 0, len(people))
	for _, p := range people {
		rows = append(rows, dataset.Row{
			"id":     dataset.Number(p.id),
			"name":   dataset.Text(p.name),
			"age":    dataset.Number(p.age),
			"city":   dataset.Text(p.city),
			"salary": dataset.Number(p.salary),
		})
	}
	return dataset.New("sample", columns, rows)
}
