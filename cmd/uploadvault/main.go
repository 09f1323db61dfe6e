// Package main 启动应用程序
package main

import "github.com/yeisme/uploadvault/pkg/cmd"

//	@title			UploadVault API
//	@version		1.0
//	@description	UploadVault 是一个多租户文件元数据与分享服务，提供用户管理、JWT 认证、文件元数据注册以及对象存储预签名上传下载等功能。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@contact.name	yeisme
//	@contact.email	yefun2004@gmail.com.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
