// Package storage 聚合数据库、对象存储与消息队列客户端.
//
// Example:
//
//	ctx := context.Background()
//	mgr, err := storage.Init(ctx, cfg)
//	if err != nil {
//	    // 处理错误
//	}
//
//	s3Client := mgr.GetS3Client()
//	dbClient := mgr.GetDBClient()
package storage

import (
	"context"

	"github.com/yeisme/uploadvault/pkg/configs"
	dbc "github.com/yeisme/uploadvault/pkg/internal/storage/db"
	mqc "github.com/yeisme/uploadvault/pkg/internal/storage/mq"
	s3c "github.com/yeisme/uploadvault/pkg/internal/storage/s3"
	nlog "github.com/yeisme/uploadvault/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	DB *dbc.Client
	S3 *s3c.Client
	MQ *mqc.Client
}

// Init 根据配置初始化全部存储资源. MQ 未启用时 MQ 字段为 nil.
func Init(ctx context.Context, cfg *configs.AppConfig) (*Manager, error) {
	m := &Manager{}

	// DB
	dbi, err := dbc.New(ctx, &cfg.DB, cfg.Metrics.Enable && cfg.Metrics.EnableGorm)
	if err != nil {
		return nil, err
	}

	m.DB = dbi

	// S3
	s3i, err := s3c.New(ctx, &cfg.S3)
	if err != nil {
		return nil, err
	}

	m.S3 = s3i

	// MQ
	if cfg.MQ.Enable {
		mqi, err := mqc.New(ctx, &cfg.MQ)
		if err != nil {
			return nil, err
		}

		m.MQ = mqi
	}

	nlog.Logger().Info().Msg("storage manager initialized")

	return m, nil
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetS3Client 获取 S3 客户端.
func (m *Manager) GetS3Client() *s3c.Client {
	return m.S3
}

// GetMQClient 获取 MQ 客户端，未启用时返回 nil.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}

// Close 释放全部存储资源.
func (m *Manager) Close() error {
	var err error

	if m.MQ != nil {
		if e := m.MQ.Close(); e != nil {
			err = e
		}
	}

	if m.S3 != nil {
		if e := m.S3.Close(); e != nil {
			err = e
		}
	}

	if m.DB != nil {
		if sqlDB, e := m.DB.DB.DB(); e == nil {
			if e := sqlDB.Close(); e != nil {
				err = e
			}
		}
	}

	return err
}
