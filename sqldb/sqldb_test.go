package sqldb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []Field{
	{Title: "source", Type: "VARCHAR(64)"},
	{Title: "payload", Type: "MEDIUMTEXT"},
}

func TestCreateTableSQL(t *testing.T) {
	tests := []struct {
		name    string
		table   TableData
		want    string
		wantErr error
	}{
		{
			name:  "plain",
			table: TableData{TableName: "harvests", ColumnNames: columns},
			want:  "CREATE TABLE IF NOT EXISTS `harvests` (`source` VARCHAR(64),`payload` MEDIUMTEXT) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
		},
		{
			name:  "auto_key",
			table: TableData{TableName: "harvests", ColumnNames: columns, AutoKey: true},
			want:  "CREATE TABLE IF NOT EXISTS `harvests` (id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,`source` VARCHAR(64),`payload` MEDIUMTEXT) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
		},
		{
			name:    "no_columns",
			table:   TableData{TableName: "harvests"},
			wantErr: ErrNoColumn,
		},
		{
			name:    "bad_table",
			table:   TableData{TableName: "harvests; DROP", ColumnNames: columns},
			wantErr: ErrBadName,
		},
		{
			name:    "bad_column",
			table:   TableData{TableName: "harvests", ColumnNames: []Field{{Title: "a`b", Type: "TEXT"}}},
			wantErr: ErrBadName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreateTableSQL(tt.table)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInsertSQL(t *testing.T) {
	tests := []struct {
		name    string
		table   TableData
		want    string
		wantErr bool
	}{
		{
			name: "insert_data",
			table: TableData{
				TableName: "harvests", ColumnNames: columns,
				Args: []interface{}{"reddit", "{}"}, DataCount: 1,
			},
			want: "INSERT INTO `harvests` (`source`,`payload`) VALUES (?,?);",
		},
		{
			name: "insert_multi_data",
			table: TableData{
				TableName: "harvests", ColumnNames: columns,
				Args: []interface{}{"reddit", "{}", "generic", "{}"}, DataCount: 2,
			},
			want: "INSERT INTO `harvests` (`source`,`payload`) VALUES (?,?),(?,?);",
		},
		{
			name: "insert_multi_data_wrong_count",
			table: TableData{
				TableName: "harvests", ColumnNames: columns,
				Args: []interface{}{"reddit", "{}", "generic", "{}"}, DataCount: 1,
			},
			wantErr: true,
		},
		{
			name:    "insert_no_rows",
			table:   TableData{TableName: "harvests", ColumnNames: columns},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InsertSQL(tt.table)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrArgMismatch), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
