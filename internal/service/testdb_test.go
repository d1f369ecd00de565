package service

import (
	"fmt"
	"sync/atomic"
)

var testDBSeq atomic.Int64

// testDSN 为每个测试分配独立的命名内存数据库，避免测试间数据串扰
func testDSN() string {
	return fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
}
