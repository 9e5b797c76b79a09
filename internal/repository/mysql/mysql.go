package mysql

import (
	"github.com/go-sql-driver/mysql"
)

// MySQL 唯一键冲突错误码。唯一约束是重复点赞/关注并发竞争下的
// 最终防线，应用层的存在性预检查只是为了给出更友好的错误。
const duplicateEntryErrNo = 1062

// IsDuplicateEntry 判断是否为唯一约束冲突
func IsDuplicateEntry(err error) bool {
	if mysqlErr, ok := err.(*mysql.MySQLError); ok {
		return mysqlErr.Number == duplicateEntryErrNo
	}
	return false
}
