// Package generator hands out snowflake ids for export artifacts. Ids from one
// node are unique and increase with time.
package generator

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"

	"github.com/bwmarrin/snowflake"
)

// MaxNode is the largest snowflake node number.
const MaxNode = 1023

// IDbyIP reads an IPv4 address as a big-endian uint32; anything else is 0.
func IDbyIP(ip string) uint32 {
	var id uint32
	binary.Read(bytes.NewBuffer(net.ParseIP(ip).To4()), binary.BigEndian, &id)
	return id
}

// NodeByIP folds an address into the snowflake node range.
func NodeByIP(ip string) int64 {
	return int64(IDbyIP(ip) % (MaxNode + 1))
}

type Generator struct {
	node *snowflake.Node
}

func New(node int64) (*Generator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d:%w", node, err)
	}

	return &Generator{node: n}, nil
}

// Next returns the next id in decimal.
func (g *Generator) Next() string {
	return g.node.Generate().String()
}
